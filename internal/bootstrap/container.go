package bootstrap

import (
	"context"
	"log"

	"anime-reel-be/internal/config"
	"anime-reel-be/internal/controller"
	"anime-reel-be/internal/pkg/logger"
	"anime-reel-be/internal/repository/memory"
	"anime-reel-be/internal/repository/unitofwork"
	"anime-reel-be/internal/service"
	"anime-reel-be/pkg/recsys/featurestore"
	"anime-reel-be/pkg/recsys/mlmodel"
	"anime-reel-be/pkg/recsys/scorer"

	pktNats "anime-reel-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ReelController     controller.IReelController
	FeedbackController controller.IFeedbackController
	CatalogController  controller.ICatalogController
	UserController     controller.IUserController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Serving assets, exposed for the status endpoint. Ready is false when
	// either asset failed to load; the server gates every request on it.
	Store *featurestore.Store
	Ready bool
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Serving Assets
	// The feature store and the ranking model are loaded once and stay
	// immutable for the process lifetime. A load failure does not kill the
	// process; the server answers 503 until a restart fixes the assets.
	ready := true

	store, err := featurestore.Load(context.Background(), db)
	if err != nil {
		sysLogger.Error("bootstrap", "Failed to load feature store, serving disabled", map[string]interface{}{
			"error": err.Error(),
		})
		store, _ = featurestore.New(nil)
		ready = false
	} else {
		sysLogger.Info("bootstrap", "Feature store loaded", map[string]interface{}{
			"titles":    store.Len(),
			"dimension": store.Dim(),
		})
	}

	var rankModel mlmodel.Regressor
	forest, err := mlmodel.LoadForest(cfg.Recsys.ModelPath)
	if err != nil {
		sysLogger.Error("bootstrap", "Failed to load ranking model, serving disabled", map[string]interface{}{
			"error": err.Error(),
			"path":  cfg.Recsys.ModelPath,
		})
		ready = false
	} else {
		rankModel = forest
		if want := 2*store.Dim() + 2; forest.NumFeatures() != 0 && forest.NumFeatures() != want {
			sysLogger.Warn("bootstrap", "Model input width does not match store dimension", map[string]interface{}{
				"model_features": forest.NumFeatures(),
				"expected":       want,
			})
		}
	}

	// 3. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Initialize In-Memory Profile Cache
	profileCache := memory.NewProfileCache()

	// 3.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.FeedbackTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.FeedbackTopic,
		uowFactory,
		store,
		profileCache,
	)

	modelScorer := scorer.New(store, rankModel)

	reelService := service.NewReelService(
		uowFactory,
		store,
		modelScorer,
		profileCache,
		publisherService,
		rdb,
		cfg.Recsys,
	)
	suggestionService := service.NewSuggestionService(store, cfg.Recsys.SuggestionLimit)
	feedbackService := service.NewFeedbackService(uowFactory, publisherService, natsPub)
	catalogService := service.NewCatalogService(uowFactory, store)
	userService := service.NewUserService(uowFactory, profileCache, natsPub)

	// 5. Controllers
	return &Container{
		ReelController:     controller.NewReelController(reelService, suggestionService),
		FeedbackController: controller.NewFeedbackController(feedbackService),
		CatalogController:  controller.NewCatalogController(catalogService),
		UserController:     controller.NewUserController(userService),
		ConsumerService:    consumerService,
		Store:              store,
		Ready:              ready,
	}
}
