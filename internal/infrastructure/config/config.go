package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr            string
	LogLevel        string
	DevMode         bool
	CORSAllowOrigin string

	// Capture pipeline
	CaptureSource   string // "off" | "pattern"
	CaptureInterval time.Duration
	JPEGQuality     int
	CanvasWidth     int
	CanvasHeight    int

	// Registry bounds
	SessionTTL  time.Duration
	MaxSessions int
}

func FromEnv() Config {
	cfg := Config{
		Addr:            getEnv("ADDR", ":8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "*"),
		CaptureSource:   getEnv("CAPTURE_SOURCE", "off"),
		JPEGQuality:     getEnvInt("JPEG_QUALITY", 70),
		CanvasWidth:     getEnvInt("CANVAS_WIDTH", 800),
		CanvasHeight:    getEnvInt("CANVAS_HEIGHT", 600),
		MaxSessions:     getEnvInt("MAX_SESSIONS", 500),
	}
	if os.Getenv("DEV_MODE") == "1" || os.Getenv("DEV_MODE") == "true" {
		cfg.DevMode = true
	}
	// capture.MinInterval floors whatever is configured here
	cfg.CaptureInterval = time.Duration(getEnvInt("CAPTURE_INTERVAL_MS", 250)) * time.Millisecond
	cfg.SessionTTL = time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
