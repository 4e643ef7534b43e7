package config

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// MinAdminTokenLength is the minimum required length for the admin API token in production
	MinAdminTokenLength = 32
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	// ClinicTimezone is the IANA timezone all calendar-date arithmetic is anchored to
	ClinicTimezone string
	// AdminAPIToken gates the /api/admin endpoints (bearer token)
	AdminAPIToken string
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	// Other
	AllowedOrigins []string
	AppURL         string
	// Rate limiting for the public booking endpoints (requests per minute per IP)
	BookingRateLimit int
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")
	adminToken := getEnv("ADMIN_API_TOKEN", "")

	// Validate admin token - this will fatal in production if invalid
	ValidateAdminToken(adminToken, environment)

	// In development, generate a token if none provided so the admin endpoints stay usable
	if adminToken == "" && environment != "production" {
		adminToken = GenerateSecureToken()
		log.Printf("[INFO] Generated temporary admin API token for development: %s", adminToken)
	}

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		DBPath:           getEnv("DB_PATH", "db/clinica.db"),
		Environment:      environment,
		ClinicTimezone:   getEnv("CLINIC_TIMEZONE", "America/Sao_Paulo"),
		AdminAPIToken:    adminToken,
		ResendAPIKey:     getEnv("RESEND_API_KEY", ""),
		EmailFrom:        getEnv("EMAIL_FROM", "agenda@clinicabemestar.com.br"),
		EmailFromName:    getEnv("EMAIL_FROM_NAME", "Clínica Bem-Estar"),
		EmailTestMode:    getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		AllowedOrigins:   strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		AppURL:           getEnv("APP_URL", "http://localhost:8080"),
		BookingRateLimit: getEnvInt("BOOKING_RATE_LIMIT", 10),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[WARNING] Invalid integer for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

// ValidateAdminToken validates the admin API token meets security requirements
// In production, it must be at least 32 bytes and not a known insecure default
func ValidateAdminToken(token string, environment string) error {
	// Known insecure defaults that must be rejected
	insecureDefaults := []string{
		"admin",
		"change-me",
		"secret",
		"token",
		"test",
		"",
	}

	for _, insecure := range insecureDefaults {
		if strings.EqualFold(token, insecure) {
			if environment == "production" {
				log.Fatal("[CRITICAL] ADMIN_API_TOKEN is missing or set to an insecure default value. Generate a secure random token with: openssl rand -base64 32")
			}
			log.Printf("[WARNING] ADMIN_API_TOKEN is missing or insecure. This is acceptable only in development.")
			return nil
		}
	}

	if environment == "production" {
		if len(token) < MinAdminTokenLength {
			log.Fatalf("[CRITICAL] ADMIN_API_TOKEN must be at least %d characters in production (current: %d). Generate with: openssl rand -base64 32", MinAdminTokenLength, len(token))
		}
	}

	return nil
}

// GenerateSecureToken generates a cryptographically secure random token
// This is used only for development when no token is provided
func GenerateSecureToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Printf("[WARNING] Failed to generate secure token: %v", err)
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(bytes)
}
