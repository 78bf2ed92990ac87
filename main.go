package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Holotrica/stripe-backend/config"
	"github.com/Holotrica/stripe-backend/controllers"
	"github.com/Holotrica/stripe-backend/logger"
	"github.com/Holotrica/stripe-backend/middleware"
	awspkg "github.com/Holotrica/stripe-backend/pkg/aws"
	"github.com/Holotrica/stripe-backend/providers"
	"github.com/Holotrica/stripe-backend/routes"
	"github.com/Holotrica/stripe-backend/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceName = "stripe-backend"

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// AWS is optional: CloudWatch and SNS are only wired when configured.
	var (
		logShipper *awspkg.CloudWatchLogsClient
		metrics    awspkg.MetricsRecorder
		snsClient  awspkg.SNSPublisher
		awsErr     error
	)
	if cfg.CloudWatchEnabled || cfg.PaymentSNSTopicARN != "" {
		awsCfg, err := awspkg.LoadAWSConfig(ctx)
		if err != nil {
			awsErr = err
		} else {
			if cfg.CloudWatchEnabled {
				metrics = awspkg.NewMetricsClient(awsCfg, cfg.CloudWatchNamespace)
				logShipper, awsErr = awspkg.NewCloudWatchLogsClient(ctx, awsCfg, cfg.CloudWatchLogGroup, serviceName)
			}
			if cfg.PaymentSNSTopicARN != "" {
				snsClient = awspkg.NewSNSClient(awsCfg)
			}
		}
	}

	var zapLogger *zap.Logger
	if logShipper != nil {
		zapLogger, err = logger.New(cfg.Environment, logShipper)
	} else {
		zapLogger, err = logger.New(cfg.Environment, nil)
	}
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	if awsErr != nil {
		zapLogger.Warn("AWS integrations partially unavailable", zap.Error(awsErr))
	}

	// Provider and DI chain
	stripeProvider := providers.NewStripeProvider(cfg.StripeSecretKey)
	checkoutService := services.NewCheckoutService(stripeProvider, cfg.SuccessURL(), cfg.CancelURL(), metrics, zapLogger)
	webhookService := services.NewWebhookService(snsClient, cfg.PaymentSNSTopicARN, metrics, zapLogger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(zapLogger),
		middleware.MetricsMiddleware(metrics, serviceName),
		middleware.SecurityHeaders(),
		middleware.CORSMiddleware(cfg.AllowedOrigin),
	)

	routes.RegisterRoutes(r,
		controllers.NewCheckoutController(checkoutService),
		controllers.NewWebhookController(webhookService),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	zapLogger.Info("Server is running",
		zap.String("port", cfg.Port),
		zap.String("frontend_url", cfg.FrontendURL),
		zap.String("allowed_origin", cfg.AllowedOrigin),
	)
	<-quit
	zapLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("Server exited cleanly")
}
