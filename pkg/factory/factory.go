package factory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/redis/go-redis/v9"

	"jobboard/internal/concurrent"
	"jobboard/internal/config"
	"jobboard/internal/domain"
	"jobboard/internal/repository"
	"jobboard/internal/service"
	"jobboard/pkg/cache"
	"jobboard/pkg/database"
	"jobboard/pkg/logger"
	"jobboard/pkg/token"
)

type Factory interface {
	GetLogger() logger.Logger
	GetConfig() *config.Config
	GetDB() *sql.DB
	GetRedisClient() *redis.Client
	GetCache() cache.Cache
	GetCacheManager() cache.CacheStrategy
	GetTokenMaker() *token.Maker
	GetNotifierPool() *concurrent.NotifierPool

	GetUserRepository() domain.UserRepository
	GetEmployerRepository() domain.EmployerRepository
	GetJobRepository() domain.JobRepository
	GetApplicationRepository() domain.ApplicationRepository
	GetProfileRepository() domain.ProfileRepository

	GetAuthService() domain.AuthService
	GetEmployerService() domain.EmployerService
	GetJobService() domain.JobService
	GetApplicationService() domain.ApplicationService
	GetProfileService() domain.ProfileService
}

type AppFactory struct {
	config       *config.Config
	logger       logger.Logger
	db           *sql.DB
	redisClient  *redis.Client
	cache        cache.Cache
	cacheManager cache.CacheStrategy
	tokenMaker   *token.Maker
	notifierPool *concurrent.NotifierPool

	userRepository        domain.UserRepository
	employerRepository    domain.EmployerRepository
	jobRepository         domain.JobRepository
	applicationRepository domain.ApplicationRepository
	profileRepository     domain.ProfileRepository

	authService        domain.AuthService
	employerService    domain.EmployerService
	jobService         domain.JobService
	applicationService domain.ApplicationService
	profileService     domain.ProfileService
}

func NewFactory() (Factory, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.LogLevel(cfg.LogLevel), nil)

	db, err := database.NewConnection(cfg, log)
	if err != nil {
		return nil, err
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("Redis bağlantısı kurulamadı: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET tanımlı değil")
	}

	// Initialize cache
	cacheInstance := cache.NewRedisCache(redisClient, log, "jobboard")
	cacheManager := cache.NewCacheManager(cacheInstance, log)

	factory := &AppFactory{
		config:       cfg,
		logger:       log,
		db:           db,
		redisClient:  redisClient,
		cache:        cacheInstance,
		cacheManager: cacheManager,
		tokenMaker:   token.NewMaker(cfg.JWT.Secret, cfg.JWT.ExpiryHours),
	}

	factory.initRepositories()
	factory.initServices()

	return factory, nil
}

func (f *AppFactory) initRepositories() {
	f.userRepository = repository.NewUserRepository(f.db, f.logger)
	f.employerRepository = repository.NewEmployerRepository(f.db, f.logger)
	f.jobRepository = repository.NewJobRepository(f.db, f.logger)
	f.applicationRepository = repository.NewApplicationRepository(f.db, f.logger)
	f.profileRepository = repository.NewProfileRepository(f.db, f.logger)
}

func (f *AppFactory) initServices() {
	f.authService = service.NewAuthService(f.userRepository, f.tokenMaker, f.logger)

	// Delivery is a log line for now; the pool keeps it off the request path.
	f.notifierPool = concurrent.NewNotifierPool(4, 256, func(n *concurrent.StatusNotification) error {
		f.logger.Info("Başvuru durumu bildirimi", map[string]interface{}{
			"application_id": n.ApplicationID,
			"user_id":        n.UserID,
			"job_id":         n.JobID,
			"status":         n.Status,
		})
		return nil
	}, f.logger)

	f.employerService = service.NewEmployerService(f.employerRepository, f.userRepository, f.logger)

	// Create base job service first
	baseJobService := service.NewJobService(f.jobRepository, f.employerRepository, f.logger)
	// Wrap with caching
	f.jobService = service.NewCachedJobService(baseJobService, f.cache, f.cacheManager, f.logger)

	f.applicationService = service.NewApplicationService(
		f.applicationRepository,
		f.jobRepository,
		f.employerRepository,
		f.notifierPool,
		f.logger,
	)

	f.profileService = service.NewProfileService(
		f.profileRepository,
		f.userRepository,
		f.employerRepository,
		f.logger,
	)
}

func (f *AppFactory) GetLogger() logger.Logger {
	return f.logger
}

func (f *AppFactory) GetConfig() *config.Config {
	return f.config
}

func (f *AppFactory) GetDB() *sql.DB {
	return f.db
}

func (f *AppFactory) GetRedisClient() *redis.Client {
	return f.redisClient
}

func (f *AppFactory) GetCache() cache.Cache {
	return f.cache
}

func (f *AppFactory) GetCacheManager() cache.CacheStrategy {
	return f.cacheManager
}

func (f *AppFactory) GetTokenMaker() *token.Maker {
	return f.tokenMaker
}

func (f *AppFactory) GetNotifierPool() *concurrent.NotifierPool {
	return f.notifierPool
}

func (f *AppFactory) GetUserRepository() domain.UserRepository {
	return f.userRepository
}

func (f *AppFactory) GetEmployerRepository() domain.EmployerRepository {
	return f.employerRepository
}

func (f *AppFactory) GetJobRepository() domain.JobRepository {
	return f.jobRepository
}

func (f *AppFactory) GetApplicationRepository() domain.ApplicationRepository {
	return f.applicationRepository
}

func (f *AppFactory) GetProfileRepository() domain.ProfileRepository {
	return f.profileRepository
}

func (f *AppFactory) GetAuthService() domain.AuthService {
	return f.authService
}

func (f *AppFactory) GetEmployerService() domain.EmployerService {
	return f.employerService
}

func (f *AppFactory) GetJobService() domain.JobService {
	return f.jobService
}

func (f *AppFactory) GetApplicationService() domain.ApplicationService {
	return f.applicationService
}

func (f *AppFactory) GetProfileService() domain.ProfileService {
	return f.profileService
}
