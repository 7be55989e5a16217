package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// When true the submission endpoint answers 200 {score: n}
	// instead of the default empty 204.
	ScoreInBody bool

	// Cron expression for the ranking snapshot job.
	RankSnapshotCron string
	RankSnapshotSize int

	EmailSender   string
	EmailPassword string

	// GitHub repository hosting the mobile client releases served by the
	// download endpoints.
	GitHubAPIBase string
	GitHubOwner   string
	GitHubRepo    string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "guildtrivia"),
		DBPort:     getEnv("DB_PORT", "5432"),

		ScoreInBody: getEnvBool("SCORE_IN_BODY", false),

		RankSnapshotCron: getEnv("RANK_SNAPSHOT_CRON", "0 * * * *"),
		RankSnapshotSize: getEnvInt("RANK_SNAPSHOT_SIZE", 10),

		EmailSender:   getEnv("EMAIL_SENDER", ""),
		EmailPassword: getEnv("EMAIL_PASSWORD", ""),

		GitHubAPIBase: getEnv("GITHUB_API_BASE", "https://api.github.com"),
		GitHubOwner:   getEnv("GITHUB_OWNER", "guildtrivia"),
		GitHubRepo:    getEnv("GITHUB_REPO", "guildtrivia-android"),
	}

	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvBool retrieves an environment variable as a boolean or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
