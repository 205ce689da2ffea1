package config

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

type Config struct {
	ServerPort     string
	DatabaseDSN    string
	JWTSecret      string
	AWSBucket      string
	MediaBaseURL   string
	FrontendURL    string
	CORSOrigins    []string
	LogLevel       string
	LogFormat      string
	ReportLanguage language.Tag
	PageSize       int
}

// AppConfig starts out with defaults so packages that read it work before Load runs.
var AppConfig = Default()

func Default() *Config {
	return &Config{
		ServerPort:     "8080",
		DatabaseDSN:    "foodgram:foodgram@tcp(127.0.0.1:3306)/foodgram?charset=utf8mb4&parseTime=True&loc=Local",
		JWTSecret:      "change-me",
		AWSBucket:      "foodgram",
		FrontendURL:    "http://localhost:3000",
		CORSOrigins:    []string{"http://localhost:3000"},
		LogLevel:       "info",
		LogFormat:      "console",
		ReportLanguage: language.Russian,
		PageSize:       6,
	}
}

// Load reads the process environment on top of the defaults. Call it after
// the .env file has been loaded.
func Load() *Config {
	def := Default()
	cfg := &Config{
		ServerPort:     getEnv("PORT", def.ServerPort),
		DatabaseDSN:    getEnv("DB_DSN", def.DatabaseDSN),
		JWTSecret:      getEnv("JWT_SECRET", def.JWTSecret),
		AWSBucket:      getEnv("AWS_BUCKET", def.AWSBucket),
		MediaBaseURL:   strings.TrimSuffix(getEnv("MEDIA_BASE_URL", ""), "/"),
		FrontendURL:    strings.TrimSuffix(getEnv("FRONTEND_URL", def.FrontendURL), "/"),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", strings.Join(def.CORSOrigins, ","))),
		LogLevel:       getEnv("LOG_LEVEL", def.LogLevel),
		LogFormat:      getEnv("LOG_FORMAT", def.LogFormat),
		ReportLanguage: def.ReportLanguage,
		PageSize:       def.PageSize,
	}

	if raw := os.Getenv("REPORT_LANGUAGE"); raw != "" {
		if tag, err := language.Parse(raw); err == nil {
			cfg.ReportLanguage = tag
		}
	}
	if raw := os.Getenv("PAGE_SIZE"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			cfg.PageSize = size
		}
	}

	AppConfig = cfg
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
