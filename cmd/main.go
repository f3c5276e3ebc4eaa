package main

import (
	"context"
	"log"
	"net/http"

	"travel-service/config"
	adminHandler "travel-service/internal/module/admin/handler"
	adminUsecases "travel-service/internal/module/admin/usecases"
	bookingHandler "travel-service/internal/module/booking/handler"
	bookingRepositories "travel-service/internal/module/booking/repositories"
	bookingUsecases "travel-service/internal/module/booking/usecases"
	contentHandler "travel-service/internal/module/content/handler"
	contentRepositories "travel-service/internal/module/content/repositories"
	contentUsecases "travel-service/internal/module/content/usecases"
	reviewHandler "travel-service/internal/module/review/handler"
	reviewRepositories "travel-service/internal/module/review/repositories"
	reviewUsecases "travel-service/internal/module/review/usecases"
	serviceHandler "travel-service/internal/module/service/handler"
	serviceRepositories "travel-service/internal/module/service/repositories"
	serviceUsecases "travel-service/internal/module/service/usecases"
	tourHandler "travel-service/internal/module/tour/handler"
	tourRepositories "travel-service/internal/module/tour/repositories"
	tourUsecases "travel-service/internal/module/tour/usecases"
	userHandler "travel-service/internal/module/user/handler"
	userRepositories "travel-service/internal/module/user/repositories"
	userUsecases "travel-service/internal/module/user/usecases"
	"travel-service/internal/pkg/database"
	httpEngine "travel-service/internal/pkg/http"
	"travel-service/internal/pkg/httpclient"
	log_internal "travel-service/internal/pkg/log"
	"travel-service/internal/pkg/messagestream"
	"travel-service/internal/pkg/middleware"
	"travel-service/internal/pkg/notification"
	"travel-service/internal/pkg/redis"
	"travel-service/internal/pkg/scheduler"
	"travel-service/internal/pkg/storage"
	"travel-service/internal/pkg/token"
	router "travel-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start http server
	httpEngine.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {
	ctx := context.Background()

	// init logger
	logger := log_internal.Setup()

	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	// init database
	db := database.GetConnection(&cfg.Database, httpClient, logger)
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	// init object storage
	bucket, err := storage.NewBucket(&cfg.Storage)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}
	uploader := storage.NewUploader(bucket, &cfg.Storage, logger)

	// init redis
	var (
		limiterStorage fiber.Storage
		locker         redis.Locker = redis.NoopLocker{}
	)
	if cfg.Redis.Enabled {
		redisClient := redis.SetupClient(&cfg.Redis)
		limiterStorage = redis.NewLimiterStorage(redisClient)
		locker = redis.NewLocker(redisClient)
	}

	// init scheduler
	var monitoring http.Handler
	if cfg.Scheduler.Enabled {
		sched := &scheduler.Scheduler{Log: logger}
		uploader.SetRetrier(scheduler.NewAssetRetrier(sched.InitClient(&cfg.Redis)))
		monitoring = sched.Monitoring(&cfg.Redis)

		go sched.StartHandler(&cfg.Redis, cfg.Scheduler.Concurrency,
			[]string{scheduler.TypeDeleteObject},
			[]func(ctx context.Context, t *asynq.Task) error{scheduler.DeleteObjectHandler(uploader, logger)},
		)
	}

	// init message stream
	var (
		publisher  message.Publisher = messagestream.NoopPublisher{}
		subscriber message.Subscriber
	)
	if cfg.MessageStream.Enabled {
		amqp := messagestream.NewAmpq(&cfg.MessageStream)

		// Init Subscriber
		subscriber, err = amqp.NewSubscriber()
		if err != nil {
			logger.Ctx(ctx).Error("Failed to create subscriber: " + err.Error())
		}

		// Init Publisher
		pub, err := amqp.NewPublisher()
		if err != nil {
			logger.Ctx(ctx).Error("Failed to create publisher: " + err.Error())
		} else {
			publisher = pub
		}
	}

	mailer := notification.NewMailer(&cfg.SMTP, logger)
	validator := validator.New()

	enforcer, err := middleware.NewEnforcer()
	if err != nil {
		log.Fatalf("failed to init enforcer: %v", err)
	}
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpires)
	m := middleware.Middleware{
		Log:      logger,
		Tokens:   tokens,
		Enforcer: enforcer,
	}

	tourRepo := tourRepositories.New(db, logger)
	tourUsecase := tourUsecases.New(tourRepo, uploader, locker, logger)

	serviceRepo := serviceRepositories.New(db, logger)
	serviceUsecase := serviceUsecases.New(serviceRepo, uploader, locker, logger)

	bookingRepo := bookingRepositories.New(db, logger)
	bookingUsecase := bookingUsecases.New(bookingRepo, publisher, mailer, cfg.SMTP.AdminEmail, logger)

	contentRepo := contentRepositories.New(db, logger)
	contentUsecase := contentUsecases.New(contentRepo, uploader, logger)

	reviewRepo := reviewRepositories.New(db, logger)
	reviewUsecase := reviewUsecases.New(reviewRepo, logger)

	userRepo := userRepositories.New(db, logger)
	userUsecase := userUsecases.New(userRepo, tokens, cfg.Auth.BcryptCost, logger)

	// role changes apply on the next request instead of at token expiry
	m.Roles = func(ctx context.Context, userID string) (string, error) {
		user, err := userRepo.FindByID(ctx, userID)
		if err != nil || user == nil {
			return "", err
		}
		return user.Role, nil
	}

	adminUsecase := adminUsecases.New(tourUsecase, serviceRepo, bookingUsecase, reviewUsecase, userRepo, logger)

	handlers := router.Handlers{
		Tour:    &tourHandler.TourHandler{Log: logger, Validator: validator, Usecase: tourUsecase},
		Service: &serviceHandler.ServiceHandler{Log: logger, Validator: validator, Usecase: serviceUsecase},
		Booking: &bookingHandler.BookingHandler{Log: logger, Validator: validator, Usecase: bookingUsecase},
		Content: &contentHandler.ContentHandler{Log: logger, Validator: validator, Usecase: contentUsecase},
		Review:  &reviewHandler.ReviewHandler{Log: logger, Validator: validator, Usecase: reviewUsecase},
		User:    &userHandler.UserHandler{Log: logger, Validator: validator, Usecase: userUsecase},
		Admin:   &adminHandler.AdminHandler{Log: logger, Usecase: adminUsecase},
	}

	var messageRouters []*message.Router

	if subscriber != nil {
		consumeBookingCreatedRouter, err := messagestream.NewRouter(publisher, messagestream.TopicPoisoned, "booking_created_handler", messagestream.TopicBookingCreated, subscriber, handlers.Booking.ConsumeBookingCreated)
		if err != nil {
			logger.Ctx(ctx).Error("Failed to create booking_created router: " + err.Error())
		} else {
			messageRouters = append(messageRouters, consumeBookingCreatedRouter)
		}
	}

	serverHttp := httpEngine.SetupHttpEngine(&cfg.HttpServer, limiterStorage, logger)

	r := router.Initialize(serverHttp, &handlers, &m, monitoring)

	return r, messageRouters

}
