package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"stockcalendar/internal/feature/search"
	"stockcalendar/internal/feature/snapshot/domain"
	"stockcalendar/internal/feature/snapshot/domain/entity"
	"stockcalendar/internal/feature/snapshot/usecase"
)

// snapshotMySQL is the MySQL implementation of SnapshotRepository.
type snapshotMySQL struct {
	db *gorm.DB
}

// Compile-time check that snapshotMySQL implements SnapshotRepository.
var _ usecase.SnapshotRepository = (*snapshotMySQL)(nil)

// NewSnapshotRepository creates a new snapshotMySQL for the given connection.
func NewSnapshotRepository(db *gorm.DB) *snapshotMySQL {
	return &snapshotMySQL{db: db}
}

// FindByNameAndDate retrieves the snapshot for (user, name, date).
// A miss is (nil, nil), not an error.
func (r *snapshotMySQL) FindByNameAndDate(ctx context.Context, userID uint, name, date string) (*entity.Snapshot, error) {
	var s entity.Snapshot
	err := conn(ctx, r.db).
		Where("user_id = ? AND name = ? AND register_date = ?", userID, name, date).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// FindByID retrieves a snapshot by id, scoped to its owning user.
// A miss is (nil, nil), not an error.
func (r *snapshotMySQL) FindByID(ctx context.Context, userID, id uint) (*entity.Snapshot, error) {
	var s entity.Snapshot
	err := conn(ctx, r.db).
		Preload("Category").
		Where("user_id = ? AND id = ?", userID, id).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// List retrieves a user's snapshots, newest registration first, optionally
// restricted to one date and filtered by a search predicate over the name.
func (r *snapshotMySQL) List(ctx context.Context, userID uint, date string, filter search.Predicate) ([]entity.Snapshot, error) {
	q := conn(ctx, r.db).
		Preload("Category").
		Where("user_id = ?", userID)
	if date != "" {
		q = q.Where("register_date = ?", date)
	}
	q = applyPredicate(q, filter)

	var rows []entity.Snapshot
	if err := q.Order("register_date DESC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create persists a new snapshot. The composite unique index turns a lost
// duplicate-check race into ErrDuplicateSnapshot instead of a second row.
func (r *snapshotMySQL) Create(ctx context.Context, s *entity.Snapshot) error {
	if err := conn(ctx, r.db).Create(s).Error; err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateSnapshot
		}
		return err
	}
	return nil
}

// Update persists the snapshot's current field values.
func (r *snapshotMySQL) Update(ctx context.Context, s *entity.Snapshot) error {
	return conn(ctx, r.db).Save(s).Error
}

// Delete removes a snapshot by id, scoped to its owning user.
func (r *snapshotMySQL) Delete(ctx context.Context, userID, id uint) error {
	return conn(ctx, r.db).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&entity.Snapshot{}).Error
}

// isDuplicateKey reports whether err is a unique-key violation. MySQL error
// 1062; gorm's translated ErrDuplicatedKey covers the sqlite test driver.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
