package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akashsahu123/event-management/config"
	repository "github.com/akashsahu123/event-management/internal/database/postgres"
	"github.com/akashsahu123/event-management/internal/enrichment"
	"github.com/akashsahu123/event-management/internal/provider"
	"github.com/akashsahu123/event-management/internal/service"
	"github.com/akashsahu123/event-management/internal/transport"

	"github.com/akashsahu123/event-management/pkg/postgres"
	"github.com/akashsahu123/event-management/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := repository.NewCSVSeeder(cfg.App.SeedFile)
	eventRepo := repository.NewEventRepository(db, seeder)

	// Schema creation and first-run seed ingestion must succeed before
	// the service starts taking requests.
	if err := eventRepo.EnsureSchema(context.Background()); err != nil {
		logrus.Fatalf("Failed to bootstrap events table: %v", err)
	}

	var weather provider.WeatherProvider = provider.NewWeatherClient(cfg.Providers.WeatherURL, cfg.Providers.Timeout)
	distance := provider.NewDistanceClient(cfg.Providers.DistanceURL, cfg.Providers.Timeout)

	if cfg.Redis.Enabled {
		redisClient, err := redis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logrus.Errorf("Failed to initialize Redis: %v. Continuing without weather cache...", err)
		} else {
			defer redisClient.Close()
			weather = provider.NewCachedWeather(weather, redisClient, cfg.App.WeatherCacheTTL)
			logrus.Info("Weather cache enabled")
		}
	}

	engine := enrichment.NewEngine(weather, distance)
	eventService := service.NewEventService(eventRepo, engine, clockwork.NewRealClock())
	eventHandler := transport.NewEventHandler(eventService)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(eventHandler)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
