package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"stockcalendar/internal/app/router"
	authadapters "stockcalendar/internal/feature/auth/adapters"
	authhandler "stockcalendar/internal/feature/auth/transport/handler"
	authusecase "stockcalendar/internal/feature/auth/usecase"
	"stockcalendar/internal/feature/quote/adapters/naver"
	snapshotadapters "stockcalendar/internal/feature/snapshot/adapters"
	snapshothandler "stockcalendar/internal/feature/snapshot/transport/handler"
	snapshotusecase "stockcalendar/internal/feature/snapshot/usecase"
	summaryadapters "stockcalendar/internal/feature/summary/adapters"
	summaryhandler "stockcalendar/internal/feature/summary/transport/handler"
	summaryusecase "stockcalendar/internal/feature/summary/usecase"
	"stockcalendar/internal/platform/cache"
	"stockcalendar/internal/platform/db"
	platformhttp "stockcalendar/internal/platform/http"
	jwtmw "stockcalendar/internal/platform/jwt"
	"stockcalendar/internal/platform/kdate"
	platformredis "stockcalendar/internal/platform/redis"
)

func main() {
	gdb := db.OpenDB()

	// Quote lookups still work without redis, just uncached.
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repositories
	userRepo := authadapters.NewUserMySQL(gdb)
	snapshotRepo := snapshotadapters.NewSnapshotRepository(gdb)
	categoryRepo := snapshotadapters.NewCategoryRepository(gdb)
	interestRepo := snapshotadapters.NewInterestRepository(gdb)
	summaryRepo := summaryadapters.NewSummaryRepository(gdb)
	txManager := snapshotadapters.NewTxManager(gdb)

	// Market quotes, wrapped in a short-lived redis cache.
	quoteCfg := naver.LoadConfig()
	quoteRepo := naver.NewNaverQuote(quoteCfg, platformhttp.NewHTTPClient(quoteCfg.Timeout))
	cachedQuoteRepo := cache.NewCachingQuoteRepository(rdb, time.Minute, quoteRepo, "quotes")

	// Usecases
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	snapshotUC := snapshotusecase.NewSnapshotUsecase(
		snapshotRepo, categoryRepo, interestRepo, cachedQuoteRepo, kdate.NewComparer(), txManager)
	summaryUC := summaryusecase.NewSummaryUsecase(summaryRepo)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	snapshotH := snapshothandler.NewSnapshotHandler(snapshotUC)
	summaryH := summaryhandler.NewSummaryHandler(summaryUC)

	r := router.NewRouter(authH, snapshotH, summaryH)

	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
