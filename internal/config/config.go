package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	// Remote API
	APIBaseURL   string
	APITimeout   time.Duration
	APIRateLimit float64 // requests per second, 0 disables throttling
	APIRateBurst int
	// Client behaviour
	QueryDebounce       time.Duration
	HealthPollInterval  time.Duration
	DefaultThreshold    int
	ExportDir           string
	NotificationHistory int
	// Kafka Configuration
	UseKafka                bool
	KafkaBrokers            []string
	KafkaTopicNotifications string
	KafkaClientID           string
	KafkaAcks               string
	KafkaRetries            int
}

// Load reads the configuration from the environment. Files are applied
// in order and never override variables that are already set.
func Load(envFiles ...string) *Config {
	// Load .env file if it exists
	_ = godotenv.Load(envFiles...)

	// Parse Kafka brokers (comma-separated)
	kafkaBrokersStr := getEnv("KAFKA_BROKERS", "localhost:9093")
	kafkaBrokers := strings.Split(kafkaBrokersStr, ",")
	for i, broker := range kafkaBrokers {
		kafkaBrokers[i] = strings.TrimSpace(broker)
	}

	return &Config{
		Port:        getEnv("PORT", "8000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		// Remote API
		APIBaseURL:   strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8080/api"), "/"),
		APITimeout:   time.Duration(getEnvAsInt("API_TIMEOUT_SECONDS", 15)) * time.Second,
		APIRateLimit: getEnvAsFloat("API_RATE_LIMIT", 0),
		APIRateBurst: getEnvAsInt("API_RATE_BURST", 10),
		// Client behaviour
		QueryDebounce:       time.Duration(getEnvAsInt("QUERY_DEBOUNCE_MS", 300)) * time.Millisecond,
		HealthPollInterval:  time.Duration(getEnvAsInt("HEALTH_POLL_INTERVAL_SECONDS", 30)) * time.Second,
		DefaultThreshold:    getEnvAsInt("DEFAULT_THRESHOLD", 5),
		ExportDir:           getEnv("EXPORT_DIR", "./exports"),
		NotificationHistory: getEnvAsInt("NOTIFICATION_HISTORY", 50),
		// Kafka Configuration
		UseKafka:                getEnvAsBool("USE_KAFKA", false),
		KafkaBrokers:            kafkaBrokers,
		KafkaTopicNotifications: getEnv("KAFKA_TOPIC_NOTIFICATIONS", "inventory.notifications"),
		KafkaClientID:           getEnv("KAFKA_CLIENT_ID", "inventory-dashboard"),
		KafkaAcks:               getEnv("KAFKA_ACKS", "all"),
		KafkaRetries:            getEnvAsInt("KAFKA_RETRIES", 3),
	}
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return result
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return result
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return result
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
