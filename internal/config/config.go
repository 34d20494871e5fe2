// Package config reads runtime settings from the environment, after loading
// an optional .env file.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port string

	StoreDriver  string
	StoreTimeout time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	LockTTL       time.Duration
	LockWait      time.Duration

	RabbitMQURL string
	EventsQueue string

	JWTSecret      string
	AccessTokenTTL time.Duration
	BcryptCost     int
}

// Load reads path with godotenv when it exists and then builds a Config from
// the process environment. Variables already set win over the file.
func Load(path string) Config {
	if err := godotenv.Load(path); err != nil {
		log.Printf("No %s file loaded, using OS environment", path)
	}

	return Config{
		Port: getEnv("APP_PORT", "8080"),

		StoreDriver:  strings.ToLower(getEnv("STORE_DRIVER", DriverPostgres)),
		StoreTimeout: getDuration("STORE_TIMEOUT", 5*time.Second),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "hotel_booking"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),
		LockTTL:       getDuration("LOCK_TTL", 10*time.Second),
		LockWait:      getDuration("LOCK_WAIT", 2*time.Second),

		RabbitMQURL: os.Getenv("RABBITMQ_URL"),
		EventsQueue: getEnv("EVENTS_QUEUE", "hotel.booking.events"),

		JWTSecret:      getEnv("JWT_SECRET", "change-me"),
		AccessTokenTTL: time.Duration(getInt("ACCESS_TOKEN_TTL_MIN", 60)) * time.Minute,
		BcryptCost:     getInt("BCRYPT_COST", 10),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getInt(key string, fallback int) int {
	s := getEnv(key, "")
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Invalid int for %s: %q, using %d", key, s, fallback)
		return fallback
	}
	return n
}

// getDuration accepts Go durations ("750ms", "5s") or a bare number of seconds.
func getDuration(key string, fallback time.Duration) time.Duration {
	s := getEnv(key, "")
	if s == "" {
		return fallback
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second
	}
	log.Printf("Invalid duration for %s: %q, using %s", key, s, fallback)
	return fallback
}
