// Command server runs the event registration service: public check and
// proof-submission endpoints, the admin dashboard API, and settings.
//
// All backends are optional. Without REGDESK_DATABASE_URL the stores are in
// memory; without REGDESK_REDIS_URL logout revocation is process-local;
// without EMAIL_USER or KAFKA_BROKERS the matching notification sink stays
// off. That keeps local development a single binary with no containers.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	adminhandler "regdesk/internal/admin/handler"
	adminservice "regdesk/internal/admin/service"
	"regdesk/internal/admin/store/revocation"
	"regdesk/internal/jwttoken"
	"regdesk/internal/notify"
	"regdesk/internal/platform/config"
	"regdesk/internal/platform/httpserver"
	"regdesk/internal/platform/logger"
	"regdesk/internal/platform/middleware"
	"regdesk/internal/platform/postgres"
	platformredis "regdesk/internal/platform/redis"
	"regdesk/internal/proof"
	reghandler "regdesk/internal/registration/handler"
	regmetrics "regdesk/internal/registration/metrics"
	"regdesk/internal/registration/models"
	regservice "regdesk/internal/registration/service"
	regstore "regdesk/internal/registration/store"
	settingshandler "regdesk/internal/settings/handler"
	settingsservice "regdesk/internal/settings/service"
	settingsstore "regdesk/internal/settings/store"
	httptransport "regdesk/internal/transport/http"
)

const tokenIssuer = "regdesk"

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Stores: postgres when configured, in-memory otherwise.
	var (
		registrations regservice.Store
		settings      settingsstore.Store
	)
	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			return err
		}
		registrations = regstore.NewPostgres(db)
		settings = settingsstore.NewPostgres(db)
		log.Info("using postgres store")
	} else {
		mem := regstore.NewInMemory()
		// Development seed, matching the original deployment's bootstrap
		// whitelist.
		mem.Seed([]models.WhitelistEntry{
			{LastName: "Benali", FirstName: "Ahmed", Email: "ahmed.benali@example.com"},
			{LastName: "Salhi", FirstName: "Fatima", Email: "fatima.salhi@example.com"},
		})
		registrations = mem
		settings = settingsstore.NewInMemory()
		log.Info("using in-memory store; data will not survive restarts")
	}

	// Revocation list: redis when configured, in-memory otherwise.
	var revoked revocation.List
	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		revoked = revocation.NewRedis(redisClient.Client)
		log.Info("using redis revocation list")
	} else {
		revoked = revocation.NewInMemory()
	}

	proofs, err := proof.NewStorage(cfg.UploadDir)
	if err != nil {
		return err
	}

	// Notification sinks, each wrapped with failure accounting.
	notifyMetrics := notify.NewMetrics()
	var sinks notify.Multi
	if cfg.SMTP.Enabled() {
		sinks = append(sinks, notify.Instrument("smtp", notify.NewMailer(cfg.SMTP), notifyMetrics, log))
		log.Info("smtp notifications enabled", "to", cfg.SMTP.To)
	}
	if cfg.Kafka.Enabled() {
		kafka, err := notify.NewKafkaPublisher(cfg.Kafka)
		if err != nil {
			return err
		}
		defer kafka.Close()
		sinks = append(sinks, notify.Instrument("kafka", kafka, notifyMetrics, log))
		log.Info("kafka notifications enabled", "topic", cfg.Kafka.Topic)
	}
	var notifier notify.Notifier = notify.Noop{}
	if len(sinks) > 0 {
		notifier = sinks
	}

	regSvc := regservice.New(registrations, proofs, notifier, log, regmetrics.New())

	tokens := jwttoken.New(cfg.JWTSigningKey, tokenIssuer)
	gate := adminservice.New(cfg.AdminPassword, tokens, revoked, cfg.SessionTTL, log)

	settingsSvc := settingsservice.New(settings, log)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:        log,
		Registrations: reghandler.New(regSvc, log),
		Admin:         adminhandler.New(gate, log),
		Settings:      settingshandler.New(settingsSvc, log),
		Sessions: middleware.SessionValidatorFunc(func(r *http.Request, token string) (string, error) {
			return gate.ValidateToken(r.Context(), token)
		}),
		UploadDir:    proofs.Dir(),
		MountMetrics: cfg.MetricsAddr == "",
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	var metricsSrv *http.Server
	if cfg.MetricsAddr != "" {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", promhttp.Handler())
		metricsSrv = httpserver.New(cfg.MetricsAddr, metricsMux)
		g.Go(func() error {
			log.Info("starting metrics server", "addr", cfg.MetricsAddr)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		log.Info("shutting down")
		if metricsSrv != nil {
			_ = metricsSrv.Shutdown(shutdownCtx)
		}
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
