package skistation

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/ski-station/internal/cache"
	"github.com/magabrotheeeer/ski-station/internal/config"
	"github.com/magabrotheeeer/ski-station/internal/lib/clock"
	"github.com/magabrotheeeer/ski-station/internal/lib/jwt"
	"github.com/magabrotheeeer/ski-station/internal/migrations"
	authservice "github.com/magabrotheeeer/ski-station/internal/services/auth"
	courseservice "github.com/magabrotheeeer/ski-station/internal/services/course"
	instructorservice "github.com/magabrotheeeer/ski-station/internal/services/instructor"
	pisteservice "github.com/magabrotheeeer/ski-station/internal/services/piste"
	registrationservice "github.com/magabrotheeeer/ski-station/internal/services/registration"
	skierservice "github.com/magabrotheeeer/ski-station/internal/services/skier"
	subservice "github.com/magabrotheeeer/ski-station/internal/services/subscription"
	"github.com/magabrotheeeer/ski-station/internal/storage/repository"
)

// App объединяет HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New собирает приложение станции: хранилище, миграции, кеш, сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	clk := clock.Real{}
	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	services := &Services{
		Auth:          authservice.NewAuthService(db, jwtMaker),
		Subscriptions: subservice.NewSubscriptionService(db, db, cacheRedis, clk, logger),
		Skiers:        skierservice.NewSkierService(db, db, db, logger),
		Courses:       courseservice.NewCourseService(db, logger),
		Instructors:   instructorservice.NewInstructorService(db, db, logger),
		Registrations: registrationservice.NewRegistrationService(db, db, db, clk, logger),
		Pistes:        pisteservice.NewPisteService(db, logger),
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, services)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
