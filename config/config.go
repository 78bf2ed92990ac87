package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	awspkg "github.com/Holotrica/stripe-backend/pkg/aws"
	"github.com/joho/godotenv"
)

const defaultStripeSecretName = "checkout/STRIPE_SECRET_KEY"

// Config is built once at startup and handed to each component. Nothing reads
// the environment after LoadConfig returns.
type Config struct {
	Port                string
	Environment         string
	StripeSecretKey     string
	StripeSecretName    string
	FrontendURL         string
	AllowedOrigin       string
	PaymentSNSTopicARN  string
	UseSecrets          bool
	CloudWatchEnabled   bool
	CloudWatchLogGroup  string
	CloudWatchNamespace string
}

// SuccessURL is where Stripe sends the shopper after payment. Stripe replaces
// the {CHECKOUT_SESSION_ID} placeholder itself.
func (c *Config) SuccessURL() string {
	return c.FrontendURL + "/success?session_id={CHECKOUT_SESSION_ID}"
}

// CancelURL is where Stripe sends the shopper when they abandon checkout.
func (c *Config) CancelURL() string {
	return c.FrontendURL + "/cart"
}

// LoadConfig reads configuration from the environment (and .env when present),
// optionally overriding the Stripe key from Secrets Manager.
func LoadConfig(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	cfg := fromEnv()

	if cfg.UseSecrets {
		awsCfg, err := awspkg.LoadAWSConfig(ctx)
		if err != nil {
			return nil, err
		}
		applySecrets(ctx, cfg, awspkg.NewSecretsClient(awsCfg))
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv() *Config {
	frontendURL := strings.TrimSuffix(getEnv("FRONTEND_URL", "http://localhost:3000"), "/")
	return &Config{
		Port:                getEnv("PORT", "4000"),
		Environment:         getEnv("APP_ENV", "development"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeSecretName:    getEnv("STRIPE_SECRET_NAME", defaultStripeSecretName),
		FrontendURL:         frontendURL,
		AllowedOrigin:       strings.TrimSuffix(getEnv("CORS_ORIGIN", frontendURL), "/"),
		PaymentSNSTopicARN:  os.Getenv("PAYMENT_SNS_TOPIC_ARN"),
		UseSecrets:          os.Getenv("AWS_USE_SECRETS") == "true",
		CloudWatchEnabled:   os.Getenv("CLOUDWATCH_ENABLED") == "true",
		CloudWatchLogGroup:  getEnv("CLOUDWATCH_LOG_GROUP", "/stripe-backend/services"),
		CloudWatchNamespace: getEnv("CLOUDWATCH_NAMESPACE", "StripeBackend"),
	}
}

// applySecrets overrides values that are present in Secrets Manager. A missing
// secret leaves the environment value in place. StripeSecretName may point at
// one field of a JSON secret ("checkout/stripe#secret_key").
func applySecrets(ctx context.Context, cfg *Config, sm awspkg.SecretGetter) {
	if v, err := sm.GetSecret(ctx, cfg.StripeSecretName); err == nil && v != "" {
		cfg.StripeSecretKey = v
	}
}

func (c *Config) validate() error {
	if c.StripeSecretKey == "" {
		return fmt.Errorf("missing required environment variable STRIPE_SECRET_KEY")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
