package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "loan-service/internal/adapter/http"
	appmw "loan-service/internal/adapter/middleware"
	"loan-service/internal/adapter/repository/mysql"
	"loan-service/internal/config"
	"loan-service/internal/infrastructure/cache"
	"loan-service/internal/infrastructure/db"
	"loan-service/internal/usecase/loan"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if cfg.MigrateOnBoot {
		if err := db.Migrate(gdb); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}
	if cfg.SeedOnBoot {
		if err := db.Seed(context.Background(), gdb); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	usecase := loan.NewUsecase(mysql.NewLoanRepository(gdb))

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover(), middleware.CORS())
	e.Use(appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", httpadp.NewHandler().Health)
	httpadp.NewLoanHandler(usecase).Register(e)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
