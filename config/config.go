package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the dashboard service configuration.
type Config struct {
	Port                string        // HTTP listen port
	NewsAPIURL          string        // Base URL of the news API
	NewsAPITimeout      time.Duration // Per-request timeout for news API calls
	SessionTTL          time.Duration // Idle lifetime of a dashboard session
	SessionCookieSecure bool          // Mark the session cookie Secure
	RateLimitRPS        float64       // Per-IP requests per second
	RateLimitBurst      int           // Per-IP burst
	LogLevel            string        // debug, info, warn or error
	ShutdownTimeout     time.Duration // Grace period for in-flight requests
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	config := &Config{
		Port:            getEnv("PORT", "3000"),
		NewsAPIURL:      strings.TrimRight(getEnv("NEWS_API_URL", "http://localhost:5000"), "/"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		NewsAPITimeout:  10 * time.Second,
		SessionTTL:      30 * time.Minute,
		RateLimitRPS:    5,
		RateLimitBurst:  20,
		ShutdownTimeout: 10 * time.Second,
	}

	var err error
	if config.NewsAPITimeout, err = getDuration("NEWS_API_TIMEOUT", config.NewsAPITimeout); err != nil {
		return nil, err
	}
	if config.SessionTTL, err = getDuration("SESSION_TTL", config.SessionTTL); err != nil {
		return nil, err
	}
	if config.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", config.ShutdownTimeout); err != nil {
		return nil, err
	}
	if config.SessionCookieSecure, err = getBool("SESSION_COOKIE_SECURE", false); err != nil {
		return nil, err
	}
	if v := getEnv("RATE_LIMIT_RPS", ""); v != "" {
		rps, perr := strconv.ParseFloat(v, 64)
		if perr != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", perr)
		}
		config.RateLimitRPS = rps
	}
	if v := getEnv("RATE_LIMIT_BURST", ""); v != "" {
		burst, perr := strconv.Atoi(v)
		if perr != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", perr)
		}
		config.RateLimitBurst = burst
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	u, err := url.Parse(c.NewsAPIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("NEWS_API_URL must be an absolute http(s) URL, got %q", c.NewsAPIURL)
	}

	if c.NewsAPITimeout <= 0 {
		return fmt.Errorf("NEWS_API_TIMEOUT must be positive")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive")
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}
	return nil
}

// getEnv retrieves an environment variable or returns a fallback value.
// KEY_FILE, when set and readable, takes precedence over KEY.
func getEnv(key, fallback string) string {
	if path := os.Getenv(key + "_FILE"); path != "" {
		content, err := os.ReadFile(path)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format: %w", key, err)
	}
	return d, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
