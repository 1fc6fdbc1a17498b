package config

import "os"

// Config holds server configuration read from the environment
type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	HTTPPort  string
	JWTSecret string

	// Demo credentials for the built-in login
	DemoEmail    string
	DemoPassword string
}

// Load reads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "wealthempire"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:     getEnv("PORT", "8080"),
		JWTSecret:    getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		DemoEmail:    getEnv("DEMO_EMAIL", "founder@example.com"),
		DemoPassword: getEnv("DEMO_PASSWORD", "password123"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
