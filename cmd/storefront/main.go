package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/auth"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/cart/store"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/catalog"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/config"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/httpapi"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/insights"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/orders"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/payment"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/recommend"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/textgen"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Cart snapshots: Redis when configured, in-process otherwise.
	var snapshots store.SnapshotStore
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.WithError(err).Fatal("failed to connect to redis")
		}
		defer client.Close()
		snapshots = store.NewRedisStore(client)
		log.WithField("addr", cfg.RedisAddr).Info("cart snapshots on redis")
	} else {
		snapshots = store.NewMemoryStore()
		log.Warn("REDIS_ADDR not set, carts will not survive restarts")
	}

	// Document store: Firestore drives both the catalog and the order book.
	var fsClient *firestore.Client
	if cfg.FirestoreProject != "" {
		fsClient, err = firestore.NewClient(ctx, cfg.FirestoreProject)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to firestore")
		}
		defer fsClient.Close()
		log.WithField("project", cfg.FirestoreProject).Info("firestore connected")
	}

	var menu catalog.Provider
	if fsClient != nil {
		menu = catalog.NewFirestoreProvider(fsClient)
	} else {
		menu = catalog.NewMemoryProvider(catalog.DefaultMenu())
		log.Info("serving built-in menu")
	}
	menu = catalog.NewCachedProvider(menu, cfg.MenuCacheTTL)

	var orderRepo orders.Repository
	switch {
	case fsClient != nil:
		orderRepo = orders.NewFirestoreRepository(fsClient)
	case cfg.MongoURI != "":
		db, err := orders.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to mongodb")
		}
		orderRepo = orders.NewMongoRepository(db)
		log.WithField("database", cfg.MongoDatabase).Info("orders on mongodb")
	default:
		orderRepo = orders.NewMemoryRepository()
		log.Warn("no order store configured, orders will not survive restarts")
	}

	var verifier auth.Verifier
	if cfg.FirestoreProject != "" {
		v, err := auth.NewFirebaseVerifier(ctx, cfg.FirestoreProject)
		if err != nil {
			// Anonymous shopping still works without the auth collaborator.
			log.WithError(err).Warn("firebase auth unavailable, continuing anonymous-only")
		} else {
			verifier = v
		}
	}

	var charger payment.Charger
	if cfg.StripeSecretKey != "" {
		charger = payment.NewStripeCharger(cfg.StripeSecretKey)
		log.Info("stripe payments enabled")
	} else {
		log.Warn("STRIPE_SECRET_KEY not set, checkout will skip payment intents")
	}

	var (
		recommender *recommend.Recommender
		agent       *insights.Agent
	)
	if cfg.GeminiAPIKey != "" {
		gemini, err := textgen.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.WithError(err).Warn("gemini unavailable, recommendations disabled")
		} else {
			defer gemini.Close()
			gen := textgen.WithBreaker(gemini)
			recommender = recommend.New(gen, log)
			agent = insights.NewAgent(gen, log)
			log.WithField("model", cfg.GeminiModel).Info("gemini text generation enabled")
		}
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Store:       snapshots,
		Catalog:     menu,
		Orders:      orderRepo,
		Charger:     charger,
		Verifier:    verifier,
		Recommender: recommender,
		Agent:       agent,
		Checkout: httpapi.CheckoutConfig{
			TaxRate:               cfg.TaxRate,
			Currency:              cfg.Currency,
			DeliveryFee:           cfg.DeliveryFee,
			FreeDeliveryThreshold: cfg.FreeDeliveryThreshold,
			MinOrderAmount:        cfg.MinOrderAmount,
		},
		RequestTimeout: cfg.RequestTimeout,
		BusinessOpen:   cfg.BusinessOpenAt,
		Log:            log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.HTTPPort).Info("storefront starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}
	log.Info("server exited")
}
