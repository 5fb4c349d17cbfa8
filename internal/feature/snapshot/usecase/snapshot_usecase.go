// Package usecase implements the snapshot reconciliation workflow: price
// source selection, derived delta computation, category resolution, the
// duplicate guard and the interest marker state machine.
package usecase

import (
	"context"
	"fmt"

	quoteentity "stockcalendar/internal/feature/quote/domain/entity"
	"stockcalendar/internal/feature/search"
	"stockcalendar/internal/feature/snapshot/domain"
	"stockcalendar/internal/feature/snapshot/domain/entity"
)

// SnapshotRepository abstracts the persistence layer for snapshots.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters). Lookup misses are reported as (nil, nil),
// not as errors.
type SnapshotRepository interface {
	// FindByNameAndDate retrieves the snapshot for (user, name, date).
	FindByNameAndDate(ctx context.Context, userID uint, name, date string) (*entity.Snapshot, error)

	// FindByID retrieves a snapshot by id, scoped to its owning user.
	FindByID(ctx context.Context, userID, id uint) (*entity.Snapshot, error)

	// List retrieves a user's snapshots, optionally restricted to one
	// registration date and filtered by a search predicate over the stock
	// name. A nil predicate matches everything.
	List(ctx context.Context, userID uint, date string, filter search.Predicate) ([]entity.Snapshot, error)

	// Create persists a new snapshot.
	Create(ctx context.Context, s *entity.Snapshot) error

	// Update persists changes to an existing snapshot.
	Update(ctx context.Context, s *entity.Snapshot) error

	// Delete removes a snapshot by id, scoped to its owning user.
	Delete(ctx context.Context, userID, id uint) error
}

// CategoryRepository abstracts the persistence layer for categories.
type CategoryRepository interface {
	// FindByName retrieves a user's category by name, (nil, nil) on a miss.
	FindByName(ctx context.Context, userID uint, name string) (*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, c *entity.Category) error
}

// InterestRepository abstracts the persistence layer for interest markers.
type InterestRepository interface {
	// FindByCode retrieves the marker for (user, code), (nil, nil) on a miss.
	FindByCode(ctx context.Context, userID uint, code string) (*entity.Interest, error)

	// ListByUser retrieves all of a user's interest markers.
	ListByUser(ctx context.Context, userID uint) ([]entity.Interest, error)

	// Create persists a new marker. Creating a marker that already exists
	// is a no-op, so concurrent toggles cannot produce duplicates.
	Create(ctx context.Context, i *entity.Interest) error

	// DeleteByCode removes the marker for (user, code) if present.
	DeleteByCode(ctx context.Context, userID uint, code string) error
}

// QuoteFetcher abstracts the live market data source.
type QuoteFetcher interface {
	// Fetch returns the live quote for a stock code. Unknown codes yield a
	// quote with an empty Name, not an error.
	Fetch(ctx context.Context, code string) (quoteentity.Quote, error)
}

// DateComparer abstracts the "is this date today" decision so tests can pin
// the clock.
type DateComparer interface {
	// Normalize canonicalizes a date string ("/" delimiters become "-").
	Normalize(date string) string

	// IsToday reports whether the date is the current calendar day.
	IsToday(date string) bool
}

// TxManager runs a function within a single storage transaction. The
// duplicate check and the interest toggle are check-then-act pairs; wrapping
// each reconciliation keeps concurrent submissions from racing them.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// SubmitInput carries the validated fields of a snapshot submission.
// CurrentPrice and PreviousClose are the caller-supplied historical
// overrides; they are consulted only when RegisterDate is not today, because
// past prices cannot be read from a live quote. They are pointers so an
// omitted override is distinguishable from an explicit zero: on update an
// omitted price keeps the stored value.
type SubmitInput struct {
	Code          string
	CategoryName  string
	RegisterDate  string
	IsInterest    bool
	Issue         string
	CurrentPrice  *int64
	PreviousClose *int64
}

// SubmitResult is the reconciled outcome of a create or update.
type SubmitResult struct {
	Snapshot     *entity.Snapshot
	IsInterest   bool
	CategoryName string
}

// ListItem is one row of a snapshot listing, annotated with the interest
// marker state for its stock code.
type ListItem struct {
	Snapshot   entity.Snapshot
	IsInterest bool
}

// snapshotUsecase implements the reconciliation workflow.
type snapshotUsecase struct {
	snapshots  SnapshotRepository
	categories CategoryRepository
	interests  InterestRepository
	quotes     QuoteFetcher
	dates      DateComparer
	tx         TxManager
}

// NewSnapshotUsecase creates a new snapshotUsecase with its collaborators.
func NewSnapshotUsecase(
	snapshots SnapshotRepository,
	categories CategoryRepository,
	interests InterestRepository,
	quotes QuoteFetcher,
	dates DateComparer,
	tx TxManager,
) *snapshotUsecase {
	return &snapshotUsecase{
		snapshots:  snapshots,
		categories: categories,
		interests:  interests,
		quotes:     quotes,
		dates:      dates,
		tx:         tx,
	}
}

// Create reconciles and persists a new snapshot.
//
// The quote is always fetched: it resolves the stock name, and an empty name
// rejects the code before any mutation. Prices come from the quote when the
// registration date is today, from the caller's overrides otherwise. The
// category resolution, duplicate guard, interest toggle and insert run in
// one transaction.
func (u *snapshotUsecase) Create(ctx context.Context, userID uint, in SubmitInput) (*SubmitResult, error) {
	quote, err := u.quotes.Fetch(ctx, in.Code)
	if err != nil {
		return nil, fmt.Errorf("fetch quote for %q: %w", in.Code, err)
	}
	if quote.Name == "" {
		return nil, domain.ErrInvalidCode
	}

	date := u.dates.Normalize(in.RegisterDate)
	current, previous := quote.CurrentPrice, quote.PreviousClose
	if !u.dates.IsToday(date) {
		current, previous = 0, 0
		if in.CurrentPrice != nil {
			current = *in.CurrentPrice
		}
		if in.PreviousClose != nil {
			previous = *in.PreviousClose
		}
	}

	snap := &entity.Snapshot{
		UserID:        userID,
		Name:          quote.Name,
		Code:          in.Code,
		CurrentPrice:  current,
		PreviousClose: previous,
		DiffPrice:     DiffPrice(current, previous),
		DiffPercent:   DiffPercent(current, previous),
		RegisterDate:  date,
		Issue:         in.Issue,
	}

	var categoryName string
	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		if in.CategoryName != "" {
			cat, err := u.findOrCreateCategory(ctx, userID, in.CategoryName)
			if err != nil {
				return err
			}
			snap.CategoryID = &cat.ID
			categoryName = cat.Name
		}

		existing, err := u.snapshots.FindByNameAndDate(ctx, userID, snap.Name, date)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateSnapshot
		}

		if err := u.reconcileInterest(ctx, userID, in.Code, in.IsInterest); err != nil {
			return err
		}
		return u.snapshots.Create(ctx, snap)
	})
	if err != nil {
		return nil, err
	}

	return &SubmitResult{Snapshot: snap, IsInterest: in.IsInterest, CategoryName: categoryName}, nil
}

// Update edits a snapshot in place. Caller-supplied prices overwrite the
// stored ones only when the snapshot's date is not today; a today-snapshot
// keeps live prices, so they are re-fetched instead. Omitted overrides keep
// the stored prices, so a note-only edit cannot zero them. Notes, category
// and the interest marker are always reconciled.
func (u *snapshotUsecase) Update(ctx context.Context, userID, id uint, in SubmitInput) (*SubmitResult, error) {
	snap, err := u.snapshots.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, domain.ErrSnapshotNotFound
	}

	current, previous := snap.CurrentPrice, snap.PreviousClose
	if u.dates.IsToday(snap.RegisterDate) {
		quote, err := u.quotes.Fetch(ctx, snap.Code)
		if err != nil {
			return nil, fmt.Errorf("fetch quote for %q: %w", snap.Code, err)
		}
		if quote.Name != "" {
			current, previous = quote.CurrentPrice, quote.PreviousClose
		}
	} else {
		if in.CurrentPrice != nil {
			current = *in.CurrentPrice
		}
		if in.PreviousClose != nil {
			previous = *in.PreviousClose
		}
	}

	snap.CurrentPrice = current
	snap.PreviousClose = previous
	snap.DiffPrice = DiffPrice(current, previous)
	snap.DiffPercent = DiffPercent(current, previous)
	snap.Issue = in.Issue

	var categoryName string
	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		snap.CategoryID = nil
		snap.Category = nil
		if in.CategoryName != "" {
			cat, err := u.findOrCreateCategory(ctx, userID, in.CategoryName)
			if err != nil {
				return err
			}
			snap.CategoryID = &cat.ID
			categoryName = cat.Name
		}

		if err := u.reconcileInterest(ctx, userID, snap.Code, in.IsInterest); err != nil {
			return err
		}
		return u.snapshots.Update(ctx, snap)
	})
	if err != nil {
		return nil, err
	}

	return &SubmitResult{Snapshot: snap, IsInterest: in.IsInterest, CategoryName: categoryName}, nil
}

// Delete removes a snapshot on an explicit user request. The interest
// marker is independent of any single snapshot and stays untouched.
func (u *snapshotUsecase) Delete(ctx context.Context, userID, id uint) error {
	snap, err := u.snapshots.FindByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if snap == nil {
		return domain.ErrSnapshotNotFound
	}
	return u.snapshots.Delete(ctx, userID, id)
}

// List retrieves a user's snapshots for a date, optionally filtered by a
// search word over the stock name (full syllables and bare initial
// consonants both work). Each row carries its interest marker state.
func (u *snapshotUsecase) List(ctx context.Context, userID uint, date, word string) ([]ListItem, error) {
	var filter search.Predicate
	if word != "" {
		filter = search.Build(word, "name")
	}

	snaps, err := u.snapshots.List(ctx, userID, u.dates.Normalize(date), filter)
	if err != nil {
		return nil, err
	}

	marked, err := u.interests.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	watched := make(map[string]struct{}, len(marked))
	for _, m := range marked {
		watched[m.StockCode] = struct{}{}
	}

	items := make([]ListItem, 0, len(snaps))
	for _, s := range snaps {
		_, isInterest := watched[s.Code]
		items = append(items, ListItem{Snapshot: s, IsInterest: isInterest})
	}
	return items, nil
}

// ListInterests retrieves all of a user's interest markers.
func (u *snapshotUsecase) ListInterests(ctx context.Context, userID uint) ([]entity.Interest, error) {
	return u.interests.ListByUser(ctx, userID)
}

// findOrCreateCategory resolves a user's category by name, creating it the
// first time the name is used.
func (u *snapshotUsecase) findOrCreateCategory(ctx context.Context, userID uint, name string) (*entity.Category, error) {
	cat, err := u.categories.FindByName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if cat != nil {
		return cat, nil
	}
	cat = &entity.Category{UserID: userID, Name: name}
	if err := u.categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// reconcileInterest drives the per-(user, code) marker state machine:
// ABSENT→PRESENT on want=true, PRESENT→ABSENT on want=false, self-loops
// otherwise. Idempotent per call regardless of prior state.
func (u *snapshotUsecase) reconcileInterest(ctx context.Context, userID uint, code string, want bool) error {
	existing, err := u.interests.FindByCode(ctx, userID, code)
	if err != nil {
		return err
	}
	switch {
	case want && existing == nil:
		return u.interests.Create(ctx, &entity.Interest{UserID: userID, StockCode: code})
	case !want && existing != nil:
		return u.interests.DeleteByCode(ctx, userID, code)
	}
	return nil
}
