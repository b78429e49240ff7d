package config

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	HTTPAddr       string
	AllowedOrigins []string
	PublicBaseURL  string
	LogLevel       string
	LogFormat      string
	SessionIdleTTL time.Duration

	Suggestion   SuggestionConfig
	Reservations ReservationConfig
	Redis        RedisConfig
	Kafka        KafkaConfig
}

type SuggestionConfig struct {
	APIKey      string
	Model       string
	Timeout     time.Duration
	Temperature float32
	Currency    string
}

type ReservationConfig struct {
	MaxGuests int
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type KafkaConfig struct {
	Broker  string
	Topic   string
	GroupID string
}

func (c KafkaConfig) Enabled() bool {
	return c.Broker != ""
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("SUGGESTION_TIMEOUT", "20s"))
	if err != nil {
		return nil, err
	}
	sessionTTL, err := time.ParseDuration(getEnv("SESSION_IDLE_TTL", "24h"))
	if err != nil {
		return nil, err
	}
	maxGuests, err := strconv.Atoi(getEnv("MAX_PARTY_SIZE", "12"))
	if err != nil {
		return nil, err
	}

	apiKey := getEnv("API_KEY", "")
	if apiKey == "" {
		apiKey = getEnv("GEMINI_API_KEY", "")
	}

	return &Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:8080")),
		PublicBaseURL:  strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		SessionIdleTTL: sessionTTL,
		Suggestion: SuggestionConfig{
			APIKey:      apiKey,
			Model:       getEnv("SUGGESTION_MODEL", "gemini-2.5-flash"),
			Timeout:     timeout,
			Temperature: 0.8,
			Currency:    getEnv("CURRENCY", "INR"),
		},
		Reservations: ReservationConfig{
			MaxGuests: maxGuests,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Kafka: KafkaConfig{
			Broker:  getEnv("KAFKA_BROKER", ""),
			Topic:   getEnv("KAFKA_TOPIC", "restaurant-events"),
			GroupID: getEnv("KAFKA_GROUP_ID", "das-foods-popularity"),
		},
	}, nil
}

func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

func NewKafkaReader(cfg KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})
}

func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Broker),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
