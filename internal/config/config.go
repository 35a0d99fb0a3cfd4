package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDSN         string
	DefaultUserID int64
	LogFile       string
}

func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("[config] no .env file: %v. Using system environment", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "vibe.db" // sqlite file in project root
	}
	// Demo fallback identity when the caller supplies none.
	defaultUser := int64(1)
	if s := os.Getenv("DEFAULT_USER_ID"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			defaultUser = n
		}
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, DefaultUserID: defaultUser, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s DEFAULT_USER_ID=%d LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.DefaultUserID, cfg.LogFile)
	return cfg
}
