package configs

import (
	"fmt"
	"os"
)

type Config struct {
	AppPort      string
	DatabaseURL  string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPass       string
	DBName       string
	RedisHost    string
	RedisPort    string
	KafkaBrokers string
	JWTSecret    string
}

func LoadConfig() *Config {
	return &Config{
		AppPort:      getEnv("APP_PORT", ":8080"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPass:       getEnv("DB_PASSWORD", "postgres"),
		DBName:       getEnv("DB_NAME", "feed_db"),
		RedisHost:    getEnv("REDIS_HOST", ""),
		RedisPort:    getEnv("REDIS_PORT", "6379"),
		KafkaBrokers: getEnv("KAFKA_BOOTSTRAP_SERVERS", ""),
		JWTSecret:    getEnv("JWT_SECRET", ""),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName,
	)
}

func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
