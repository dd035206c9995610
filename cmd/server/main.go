package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/config"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/database"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/handler"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/queue"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/repository"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/router"
)

func main() {
	// .env is a development convenience; deployed instances get real
	// environment variables.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	// Redis backs the login rate limiter and the pricing-table cache.
	// Both are optional: without Redis the API still serves everything.
	rdb := config.NewRedisClient()

	// The login event consumer drains the audit queue in the background.
	// A missing broker is logged, never fatal.
	go func() {
		if err := queue.StartLoginConsumer(); err != nil {
			log.Printf("login consumer unavailable: %v", err)
		}
	}()

	h := router.Handlers{
		Auth:       handler.NewAuthHandler(cfg, repository.NewUserRepo(db), repository.NewSessionRepo(db)),
		Orders:     handler.NewOrderHandler(repository.NewOrderRepo(db)),
		Ledger:     handler.NewLedgerHandler(repository.NewLedgerRepo(db)),
		StonePrice: handler.NewStonePriceHandler(db),
		Finishing:  handler.NewStoneFinishingHandler(db),
		Sizes:      handler.NewStoneSizeHandler(db),
		Thickness:  handler.NewStoneThicknessHandler(db),
		Settings:   handler.NewSettingsHandler(repository.NewSettingsRepo(db)),
		Quotations: handler.NewQuotationHandler(repository.NewQuotationRepo(db)),
		StoneStock: handler.NewStoneStockHandler(db),
		Machinery:  handler.NewMachineryHandler(db),
		Employees:  handler.NewEmployeeHandler(repository.NewEmployeeRepo(db)),
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, h, cfg.JWTSecret, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
