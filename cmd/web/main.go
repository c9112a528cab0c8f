package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"bzmarket.com/app/internal/config"
	apphttp "bzmarket.com/app/internal/http"
	"bzmarket.com/app/internal/mailer"
	"bzmarket.com/app/internal/modules/catalog"
	"bzmarket.com/app/internal/sms"
	"bzmarket.com/app/internal/storage"
	"bzmarket.com/app/internal/verification"
)

func main() {
	// .env absent en prod, les vraies variables prennent le relais
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	uploads, driver, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	logger.Info("storage_ready", "driver", driver)

	verif := verification.NewService(db, verification.DefaultPolicy())
	verif.RegisterSender(verification.ChannelEmail, &verification.EmailSender{
		Mailer:   mailer.NewSMTP(cfg.SMTP),
		From:     cfg.SMTP.From,
		FromName: cfg.SMTP.FromName,
	})
	// TODO: brancher l'agrégateur SMS retenu; en attendant le mock absorbe les envois
	verif.RegisterSender(verification.ChannelPhone, &verification.SMSSender{Provider: &sms.Mock{}})

	r := apphttp.NewRouter(apphttp.Deps{
		Logger:   logger,
		DB:       db,
		Cfg:      cfg,
		Resolver: catalog.NewGormResolver(db),
		Uploads:  uploads,
		Verif:    verif,
	})

	logger.Info("listening", "addr", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
