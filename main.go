package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/legalease/legalease-backend/handlers"
	"github.com/legalease/legalease-backend/internal/analysis"
	"github.com/legalease/legalease-backend/internal/config"
	"github.com/legalease/legalease-backend/internal/database"
	dochandler "github.com/legalease/legalease-backend/internal/document/handler"
	docrepo "github.com/legalease/legalease-backend/internal/document/repository"
	docservice "github.com/legalease/legalease-backend/internal/document/service"
	"github.com/legalease/legalease-backend/internal/extract"
	"github.com/legalease/legalease-backend/internal/storage"
	"github.com/legalease/legalease-backend/internal/tokens"
	"github.com/legalease/legalease-backend/internal/users"
	"github.com/legalease/legalease-backend/pkg/logger"
	"github.com/legalease/legalease-backend/pkg/metrics"
	"github.com/legalease/legalease-backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v groq=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Analysis.APIKey != "")

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate-limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter (per-user when authenticated, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	ctx := context.Background()

	// Connect to MongoDB with retry/backoff to tolerate startup races
	const maxAttempts = 5
	backoff := time.Second
	var client *mongo.Client
	var errConn error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if errConn == nil {
			break
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	if errConn != nil {
		logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	db := client.Database(cfg.MongoDB.Database)

	userSvc := users.NewService(users.NewMongoUserRepository(db.Collection("users")))

	// Object storage is optional; ingestion degrades to an empty fileUrl when
	// MinIO is unreachable or unconfigured.
	var uploader *storage.Uploader
	minioCfg := storage.LoadMinIOConfig()
	if minioCfg.Endpoint != "" {
		store, err := storage.NewMinIOStorage(minioCfg)
		if err != nil {
			logger.Warnf("object storage unavailable, uploads will not be stored: %v", err)
		} else {
			uploader = storage.NewUploader(store)
			logger.Infof("Connected to MinIO: %s (bucket %s)", minioCfg.Endpoint, minioCfg.Bucket)
		}
	}

	docSvc := docservice.New(
		extract.NewPDFExtractor(),
		uploader,
		analysis.NewClient(cfg.Analysis),
		docrepo.NewMongoRepo(db.Collection("documents")),
	)

	auth := middleware.RequireAuth(tokens.NewVerifier(cfg))
	api := r.Group("/api")
	handlers.NewAuthHandler(cfg, userSvc).Register(api, auth)
	dochandler.New(docSvc).Register(api, auth)
	handlers.RegisterSwagger(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "LegalEase API is running"})
	})

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint — return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		deps["mongodb"] = client.Ping(pingCtx, nil) == nil
		if !deps["mongodb"] {
			ready = false
		}

		// analysis needs a key to do anything useful
		deps["analysis"] = cfg.Analysis.APIKey != ""
		if !deps["analysis"] {
			ready = false
		}

		// Redis readiness only matters when the limiter depends on it
		if cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		// object storage is best-effort, report but never gate on it
		deps["storage"] = uploader != nil

		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting legalease backend on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
