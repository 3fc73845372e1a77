package config

import "os"

type Config struct {
	Port       string
	MongoURI   string
	MongoDB    string
	JWTSecret  string
	LogLevel   string
	CORSOrigin string
	S3         S3Config
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Load reads configuration from the environment, with development defaults.
func Load() Config {
	return Config{
		Port:       getEnv("PORT", "3000"),
		MongoURI:   getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:    getEnv("MONGODB_DB", "matrimony"),
		JWTSecret:  getEnv("JWT_TOKEN", "fallback-secret-key"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		CORSOrigin: getEnv("FRONT_END_URL", "http://localhost:5173"),
		S3: S3Config{
			Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("S3_BUCKET", "matrimony-photos"),
			UseSSL:    getEnv("S3_USE_SSL", "false") == "true",
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
