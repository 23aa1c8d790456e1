package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	ExportDir     string
	CSVOutputPath string

	FetchTimeoutMs int
	DelayMinMs     int
	DelayMaxMs     int
	UserAgent      string

	UseBrowser bool
	ChromeBin  string

	LowercaseText bool
	Debug         bool
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		ExportDir:     getEnv("EXPORT_DIR", "./data/linkedin_exports"),
		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", "./data/impressions.csv"),

		FetchTimeoutMs: getEnvInt("FETCH_TIMEOUT_MS", 10000),
		DelayMinMs:     getEnvInt("DELAY_MIN_MS", 2000),
		DelayMaxMs:     getEnvInt("DELAY_MAX_MS", 5000),
		UserAgent:      getEnv("USER_AGENT", defaultUserAgent),

		UseBrowser: getEnvBool("USE_BROWSER", false),
		ChromeBin:  getEnv("CHROME_BIN", ""),

		LowercaseText: getEnvBool("LOWERCASE_TEXT", false),
		Debug:         getEnvBool("DEBUG", false),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
