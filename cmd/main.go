package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/idrisalani/knlLogistics/internal/api"
	"github.com/idrisalani/knlLogistics/internal/clients/gomail"
	"github.com/idrisalani/knlLogistics/internal/render"
	"github.com/idrisalani/knlLogistics/internal/repository"
	"github.com/idrisalani/knlLogistics/internal/service"
	"github.com/idrisalani/knlLogistics/pkg/broker"
	"github.com/idrisalani/knlLogistics/pkg/config"
	"github.com/idrisalani/knlLogistics/pkg/job"
	"github.com/idrisalani/knlLogistics/pkg/logger"
	"github.com/idrisalani/knlLogistics/pkg/postgres"
)

const (
	ReadTimeout  = 5 * time.Second
	WriteTimeout = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	renderer := render.NewPDF(
		cfg.Company.Name,
		cfg.Company.Address,
		cfg.Company.Phone,
		cfg.Company.Email,
		cfg.Company.BankDetails,
	)

	notifier := gomail.New(cfg.Mailer)

	var producer service.Producer = noopProducer{}

	if cfg.Kafka.Enabled {
		kafkaProducer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.InvoiceEventsTopic)
		defer kafkaProducer.Close()

		producer = kafkaProducer
	}

	s := service.New(repo, renderer, notifier, producer, cfg.Company.Name)

	{
		job.NewScheduler().
			RegisterJob("mark overdue invoices", time.Hour, s.MarkOverdueInvoices).
			RegisterJob("send payment reminders", 24*time.Hour, s.SendPaymentReminders).
			Start(ctx)
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.Auth.JWTSecret, cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

// noopProducer stands in when Kafka is disabled in the environment.
type noopProducer struct{}

func (noopProducer) SendInvoiceSent(context.Context, uuid.UUID, string, string) {}

func (noopProducer) SendPaymentRecorded(context.Context, uuid.UUID, string, decimal.Decimal, decimal.Decimal, string) {
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
