package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	SecretKey         []byte
	AdminPasswordHash []byte

	DatabaseURL string
	Port        string

	TotalCapacity  int
	ExpiryGrace    time.Duration
	CreationGrace  time.Duration
	RetentionAfter time.Duration

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	ResendAPIKey    string
	AdminEmail      string
	NotifyFromEmail string
)

const (
	defaultCapacity      = 70
	defaultExpiryGrace   = 15 * time.Minute
	defaultCreationGrace = 5 * time.Minute
	defaultRetentionDays = 7
)

func Init() {
	if err := godotenv.Load(); err != nil {
		logrus.Printf("no .env file loaded: %v", err)
	}

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		logrus.Fatal("JWT secret key not set")
	}
	SecretKey = []byte(secret)

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		logrus.Fatal("admin password not set")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("failed to hash admin password: %v", err)
	}
	AdminPasswordHash = hash

	DatabaseURL = os.Getenv("DATABASE_URL")
	if DatabaseURL == "" {
		logrus.Fatal("database url not set")
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	TotalCapacity = intEnv("TOTAL_CAPACITY", defaultCapacity)
	ExpiryGrace = time.Duration(intEnv("EXPIRY_GRACE_MINUTES", int(defaultExpiryGrace/time.Minute))) * time.Minute
	CreationGrace = defaultCreationGrace
	RetentionAfter = time.Duration(intEnv("RETENTION_DAYS", defaultRetentionDays)) * 24 * time.Hour

	TwilioAccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	TwilioAuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	TwilioFromNumber = os.Getenv("TWILIO_PHONE_NUMBER")

	ResendAPIKey = os.Getenv("RESEND_API_KEY")
	AdminEmail = os.Getenv("ADMIN_EMAIL")
	NotifyFromEmail = os.Getenv("NOTIFY_FROM_EMAIL")
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		logrus.Printf("invalid %s=%q, using default %d", key, raw, fallback)
		return fallback
	}
	return n
}
