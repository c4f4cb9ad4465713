package config

import (
	"os"
	"strconv"
)

type Config struct {
	APIPort  string
	LogLevel string

	LLMBaseURL            string
	LLMAPIKey             string
	LLMModel              string
	LLMTimeoutSeconds     int
	LLMRateLimitRPS       float64
	LLMInsecureSkipVerify bool

	UploadDir      string
	MaxUploadBytes int64

	CatalogPath string

	TesseractBin   string
	TranscriberBin string
}

func Load() Config {
	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		LLMBaseURL:            mustEnv("LLM_BASE_URL", "https://api.deepseek.com"),
		LLMAPIKey:             mustEnv("LLM_API_KEY", ""),
		LLMModel:              mustEnv("LLM_MODEL", "deepseek-chat"),
		LLMTimeoutSeconds:     mustEnvInt("LLM_TIMEOUT_SECONDS", 60),
		LLMRateLimitRPS:       mustEnvFloat("LLM_RATE_LIMIT_RPS", 2),
		LLMInsecureSkipVerify: mustEnvBool("LLM_INSECURE_SKIP_VERIFY", false),

		UploadDir:      mustEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadBytes: int64(mustEnvInt("MAX_UPLOAD_MB", 32)) << 20,

		CatalogPath: mustEnv("CATALOG_PATH", ""),

		TesseractBin:   mustEnv("TESSERACT_BIN", "tesseract"),
		TranscriberBin: mustEnv("TRANSCRIBER_BIN", "whisper-cli"),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
