package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/groph-auction/internal/config"
	"github.com/fsdevblog/groph-auction/internal/events"
	"github.com/fsdevblog/groph-auction/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-auction/internal/service"
	"github.com/fsdevblog/groph-auction/internal/transport/api"
	"github.com/fsdevblog/groph-auction/internal/transport/sweeper"
	"github.com/fsdevblog/groph-auction/internal/transport/verifier"
	"github.com/fsdevblog/groph-auction/pkg/uow"
	"github.com/sirupsen/logrus"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	// verifyRequestReserve запас сверх таймаута AI сервиса на запись статусов.
	verifyRequestReserve = 5 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"runAddress":      a.Config.RunAddress,
		"verifierAddress": a.Config.VerifierAddress,
		"redisAddr":       a.Config.RedisAddr,
	}).Info("Starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork := uow.NewUnitOfWork(conn)
	if regErr := pgrepo.Register(unitOfWork); regErr != nil {
		return fmt.Errorf("app run: %s", regErr.Error())
	}

	bus := a.initBus(notifyCtx)
	defer func() {
		if closeErr := bus.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Error("close status bus")
		}
	}()

	services, sErr := service.Factory(service.FactoryArgs{
		UOW:             unitOfWork,
		Publisher:       bus,
		Verifier:        verifier.New(a.Config.VerifierAddress),
		VerifierTimeout: a.Config.VerifierTimeout,
		Logger:          a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:               a.Logger,
		UserService:          services.UserService,
		LedgerService:        services.LedgerService,
		AuctionService:       services.AuctionService,
		ListingService:       services.ListingService,
		StatusService:        services.StatusService,
		VerificationService:  services.VerificationService,
		StatusSubscriber:     bus,
		JWTSecretKey:         []byte(a.Config.JWTSecret),
		RelayToken:           a.Config.RelayToken,
		VerifyRequestTimeout: a.Config.VerifierTimeout + verifyRequestReserve,
		StreamTimeout:        a.Config.StreamTimeout,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := server.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	go sweeper.New(services.StatusService, a.Logger).
		SetInterval(a.Config.SweepInterval).
		SetStaleAfter(a.Config.VerificationStaleAfter).
		Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			a.Logger.WithError(shutdownErr).Error("server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// initBus выбирает шину статусов: redis, если он настроен и доступен, иначе шина внутри процесса.
func (a *App) initBus(ctx context.Context) events.Bus {
	if a.Config.RedisAddr == "" {
		a.Logger.Info("REDIS_ADDR is not set, using in-process status bus")
		return events.NewLocalBus()
	}

	client, err := events.NewRedisClient(ctx, a.Config.RedisAddr, a.Config.RedisPassword, a.Config.RedisDB)
	if err != nil {
		a.Logger.WithError(err).Warn("redis is unavailable, using in-process status bus")
		return events.NewLocalBus()
	}
	return events.NewRedisBus(client, a.Logger)
}
