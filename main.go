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

	"github.com/learning-notifier/learning-notifier/handlers"
	"github.com/learning-notifier/learning-notifier/internal/archive"
	"github.com/learning-notifier/learning-notifier/internal/auth"
	"github.com/learning-notifier/learning-notifier/internal/config"
	"github.com/learning-notifier/learning-notifier/internal/content"
	"github.com/learning-notifier/learning-notifier/internal/database"
	"github.com/learning-notifier/learning-notifier/internal/email"
	"github.com/learning-notifier/learning-notifier/internal/genai"
	"github.com/learning-notifier/learning-notifier/internal/notify"
	"github.com/learning-notifier/learning-notifier/internal/scheduler"
	"github.com/learning-notifier/learning-notifier/internal/topics"
	"github.com/learning-notifier/learning-notifier/internal/users"
	"github.com/learning-notifier/learning-notifier/pkg/logger"
	"github.com/learning-notifier/learning-notifier/pkg/metrics"
	"github.com/learning-notifier/learning-notifier/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v gemini=%v sendgrid=%v",
		cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Gemini.APIKey != "", cfg.SendGrid.APIKey != "")

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

	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races
	ctx := context.Background()
	client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5)
	if err != nil {
		logger.Fatalf("could not connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	logger.Infof("connected to MongoDB: %s", cfg.MongoDB.Database)

	db := client.Database(cfg.MongoDB.Database)
	adminValidator := auth.NewValidator(cfg.Admin.Code)

	usersSvc := users.NewService(users.NewMongoRepository(db.Collection("users")), adminValidator)
	contentSvc := content.NewService(content.NewMongoRepository(db.Collection("contents")))

	// Optional MinIO archive of generated topics
	var archiver topics.Archiver
	if cfg.MinIO.Endpoint != "" {
		a, err := archive.New(cfg.MinIO)
		if err != nil {
			logger.Warnf("topic archive disabled: %v", err)
		} else {
			archiver = a
		}
	}

	gemini := genai.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	topicsSvc := topics.NewService(gemini, contentSvc, archiver)
	emailSvc := email.NewService(email.NewSendGridSender(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail))
	notifySvc := notify.NewService(topicsSvc, usersSvc, emailSvc)

	handlers.RegisterHealth(r)
	handlers.NewRegisterHandler(usersSvc).Register(r)
	handlers.NewNotifyHandler(notifySvc).Register(r)
	handlers.NewDocsHandler(adminValidator, cfg.Admin.Code).Register(r)

	// readiness endpoint — return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["mongodb"] = client.Ping(c.Request.Context(), nil) == nil
		if !deps["mongodb"] {
			ready = false
		}
		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		status := http.StatusOK
		label := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			label = "not_ready"
		}
		c.JSON(status, gin.H{"status": label, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Daily cron trigger for the notification workflow
	cr, err := scheduler.Start(notifySvc)
	if err != nil {
		logger.Fatalf("failed to start scheduler: %v", err)
	}
	defer cr.Stop()

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting learning-notifier on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
