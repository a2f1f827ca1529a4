package di

import (
	"context"
	"time"

	"eduhub/config"
	"eduhub/internal/apis/handlers"
	"eduhub/internal/repositories"
	"eduhub/internal/services"
	"eduhub/internal/utils"
	"eduhub/pkg/logger"
	"eduhub/pkg/mongodb"
	"eduhub/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"
)

var DiContainer *dig.Container

// HandlerParams is what the HTTP layer pulls out of the container.
type HandlerParams struct {
	dig.In

	Auth   *handlers.AuthHandler
	Setup  *handlers.SetupHandler
	EduHub *handlers.EduHubHandler
	JWT    utils.JWTService
	Tokens repositories.TokenRepository
}

func Initialize(log *logger.Logger) {
	DiContainer = dig.New()

	// Initialize MongoDB
	dbConfig := mongodb.MongoDbConfigModel{
		ConnectionUrl: config.Env.MongoURI,
		DatabaseName:  config.Env.MongoDatabaseName,
	}
	mongodbClient, err := mongodb.InitializeDatabaseConnection(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	log.Info("Connected to MongoDB", "database", dbConfig.DatabaseName)

	// Initialize Redis
	redisClient, err := redis.RedisClient(log, config.Env.RedisHost, config.Env.RedisPort, config.Env.RedisUsername, config.Env.RedisPassword)
	if err != nil {
		log.Fatal("Failed to initialize Redis client", "error", err)
	}

	redisRepo := redis.NewRedisRepositories(redisClient, log)
	jwtService := utils.NewJWTService(
		config.Env.JWTSecret,
		time.Millisecond*time.Duration(config.Env.JWTExpirationMilliseconds),
		time.Millisecond*time.Duration(config.Env.JWTRefreshExpirationMilliseconds),
	)

	provide(log, "logger", func() *logger.Logger { return log })
	provide(log, "MongoDB client", func() *mongodb.MongoDBClient { return mongodbClient })
	provide(log, "Redis client", func() *goredis.Client { return redisClient })
	provide(log, "Redis repositories", func() redis.IRedisRepositories { return redisRepo })
	provide(log, "JWT service", func() utils.JWTService { return jwtService })

	// Repositories
	provide(log, "user repository", repositories.NewUserRepository)
	provide(log, "course repository", repositories.NewCourseRepository)
	provide(log, "enrollment repository", repositories.NewEnrollmentRepository)
	provide(log, "lesson repository", repositories.NewLessonRepository)
	provide(log, "counter repository", repositories.NewCounterRepository)
	provide(log, "collection repository", repositories.NewCollectionRepository)
	provide(log, "cache repository", func(r redis.IRedisRepositories) repositories.CacheRepository {
		return repositories.NewCacheRepository(r, time.Second*time.Duration(config.Env.CacheTTLSeconds))
	})
	provide(log, "token repository", func(r redis.IRedisRepositories) repositories.TokenRepository {
		return repositories.NewTokenRepository(r, time.Millisecond*time.Duration(config.Env.JWTRefreshExpirationMilliseconds))
	})

	// Services
	provide(log, "auth service", func(jwt utils.JWTService, tokenRepo repositories.TokenRepository) (services.AuthService, error) {
		return services.NewAuthService(
			jwt,
			tokenRepo,
			config.Env.AdminUser,
			config.Env.AdminPassword,
			time.Millisecond*time.Duration(config.Env.JWTExpirationMilliseconds),
			log,
		)
	})
	provide(log, "setup service", func(collectionRepo repositories.CollectionRepository, cacheRepo repositories.CacheRepository) services.SetupService {
		return services.NewSetupService(collectionRepo, cacheRepo, config.Env.SchemaPath, config.Env.SampleDataPath, log)
	})
	provide(log, "eduhub service", func(
		userRepo repositories.UserRepository,
		courseRepo repositories.CourseRepository,
		enrollmentRepo repositories.EnrollmentRepository,
		lessonRepo repositories.LessonRepository,
		counterRepo repositories.CounterRepository,
		cacheRepo repositories.CacheRepository,
	) services.EduHubService {
		return services.NewEduHubService(services.EduHubRepositories{
			Users:       userRepo,
			Courses:     courseRepo,
			Enrollments: enrollmentRepo,
			Lessons:     lessonRepo,
			Counters:    counterRepo,
			Cache:       cacheRepo,
		}, time.Second*time.Duration(config.Env.OperationTimeoutSeconds), log)
	})

	// Handlers
	provide(log, "auth handler", handlers.NewAuthHandler)
	provide(log, "setup handler", func(setupService services.SetupService) *handlers.SetupHandler {
		return handlers.NewSetupHandler(setupService, config.Env.SeedOnSetup)
	})
	provide(log, "eduhub handler", handlers.NewEduHubHandler)
}

func provide(log *logger.Logger, name string, constructor interface{}) {
	if err := DiContainer.Provide(constructor); err != nil {
		log.Fatal("Failed to provide "+name, "error", err)
	}
}

// GetSetupService retrieves the SetupService from the DI container
func GetSetupService() (services.SetupService, error) {
	var service services.SetupService
	err := DiContainer.Invoke(func(s services.SetupService) {
		service = s
	})
	if err != nil {
		return nil, err
	}
	return service, nil
}

// Close disconnects MongoDB and Redis.
func Close(ctx context.Context) error {
	return DiContainer.Invoke(func(m *mongodb.MongoDBClient, r *goredis.Client) error {
		if err := m.Disconnect(ctx); err != nil {
			return err
		}
		return r.Close()
	})
}
