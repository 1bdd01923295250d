package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jobboard/internal/api"
	"jobboard/internal/api/middleware"
	"jobboard/internal/database"
	"jobboard/pkg/factory"
)

func main() {
	appFactory, err := factory.NewFactory()
	if err != nil {
		fmt.Printf("Factory oluşturulamadı: %v\n", err)
		os.Exit(1)
	}

	log := appFactory.GetLogger()
	cfg := appFactory.GetConfig()
	db := appFactory.GetDB()

	defer db.Close()

	log.Info("Uygulama başlatılıyor", map[string]interface{}{"env": cfg.AppEnv})

	migrationService := database.NewMigrationService(db, log)
	if err := migrationService.RunMigrations(); err != nil {
		log.Fatal("Migrationlar uygulanamadı", map[string]interface{}{"error": err.Error()})
	}

	notifierPool := appFactory.GetNotifierPool()
	notifierPool.Start()
	defer notifierPool.Stop()

	authService := appFactory.GetAuthService()
	employerService := appFactory.GetEmployerService()
	jobService := appFactory.GetJobService()
	applicationService := appFactory.GetApplicationService()
	profileService := appFactory.GetProfileService()

	auth := middleware.NewAuth(authService, log)

	authHandler := api.NewAuthHandler(authService, log)
	employerHandler := api.NewEmployerHandler(employerService, log)
	jobHandler := api.NewJobHandler(jobService, log)
	applicationHandler := api.NewApplicationHandler(applicationService, log)
	profileHandler := api.NewProfileHandler(profileService, log)
	healthHandler := api.NewHealthHandler(appFactory, log)

	mux := http.NewServeMux()

	authHandler.RegisterRoutes(mux, auth)
	employerHandler.RegisterRoutes(mux, auth)
	jobHandler.RegisterRoutes(mux, auth)
	applicationHandler.RegisterRoutes(mux, auth)
	profileHandler.RegisterRoutes(mux, auth)
	healthHandler.RegisterRoutes(mux)

	mux.Handle("GET /metrics", promhttp.Handler())

	var handler http.Handler = mux
	handler = middleware.MetricsMiddleware(handler)
	handler = middleware.TracingMiddleware(handler)
	handler = middleware.CorsMiddleware(cfg.CORS.Origins)(handler)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		log.Info("HTTP sunucusu başlatılıyor", map[string]interface{}{"port": cfg.Server.Port})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP sunucusu başlatılamadı", map[string]interface{}{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Sunucu kapatılıyor...", map[string]interface{}{})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Sunucu kapatılırken hata oluştu", map[string]interface{}{"error": err.Error()})
	}

	log.Info("Sunucu başarıyla kapatıldı", map[string]interface{}{})
}
