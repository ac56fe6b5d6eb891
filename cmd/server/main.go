package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/adubrov/boiler-parts/internal/adapter/handler"
	paygw "github.com/adubrov/boiler-parts/internal/adapter/payment"
	"github.com/adubrov/boiler-parts/internal/adapter/storage"
	"github.com/adubrov/boiler-parts/internal/auth"
	"github.com/adubrov/boiler-parts/internal/config"
	"github.com/adubrov/boiler-parts/internal/core/service"
)

func main() {
	app := &cli.App{
		Name:  "boiler-parts",
		Usage: "boiler spare parts shop backend",
		Action: func(*cli.Context) error {
			return run()
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()

	db, err := sqlx.Connect("mysql", cfg.MySQLDSN)
	if err != nil {
		return errors.Wrap(err, "connect mysql")
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	log.Info("connected to mysql")

	if err := runMigrations(cfg); err != nil {
		return err
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "connect redis")
	}
	log.Info("connected to redis")

	partRepo := storage.NewMySQLPartRepository(db)
	cartRepo := storage.NewMySQLCartRepository(db)
	userRepo := storage.NewMySQLUserRepository(db)
	sessionStore := storage.NewRedisSessionStore(rdb, cfg.SessionTTL)
	gateway := paygw.NewYooKassaGateway(cfg.YooKassaURL, cfg.YooKassaShopID, cfg.YooKassaSecret, cfg.ReturnURL)

	catalogService := service.NewCatalogService(partRepo)
	cartService := service.NewCartService(cartRepo, partRepo, userRepo)
	userService := service.NewUserService(userRepo, auth.NewBcryptPasswordManager(0))
	paymentService := service.NewPaymentService(gateway)

	router := handler.NewRouter(catalogService, cartService, userService, paymentService, sessionStore)

	httpServer := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Infof("HTTP server listening on %s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.WithField("err", err).Error("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithField("err", err).Error("HTTP server shutdown")
	}
	log.Info("HTTP server stopped")

	rdb.Close()
	db.Close()
	log.Info("connections closed")

	return nil
}

func runMigrations(cfg *config.Config) error {
	m, err := migrate.New(cfg.MigrationsURL, "mysql://"+cfg.MySQLDSN)
	if err != nil {
		return errors.Wrap(err, "init migrations")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "apply migrations")
	}
	log.Info("migrations applied")

	return nil
}
