package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "QRSMS_"

type Config struct {
	HttpPort           int           `json:"http_port"`
	BaseURL            string        `json:"base_url"`
	DbConnString       string        `json:"db_conn_string"`
	RedisAddr          string        `json:"redis_addr"`
	RedisPassword      string        `json:"redis_password"`
	RedisDB            int           `json:"redis_db"`
	QRCacheTTLStr      string        `json:"qr_cache_ttl"`
	QRCacheTTL         time.Duration `json:"-"`
	ShutdownTimeoutStr string        `json:"shutdown_timeout"`
	ShutdownTimeout    time.Duration `json:"-"`
}

// LoadConfig reads the json config file, applies QRSMS_* environment
// overrides (optionally from a .env file) and parses durations
func LoadConfig(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := ReadConfigJson(configFile)
	if err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.finalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ReadConfigJson reads json formatted configuration from the given file
func ReadConfigJson(configFile string) (*Config, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	cfg := new(Config)

	if err = json.Unmarshal(content, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	strVars := map[string]*string{
		"BASE_URL":         &c.BaseURL,
		"DB_CONN_STRING":   &c.DbConnString,
		"REDIS_ADDR":       &c.RedisAddr,
		"REDIS_PASSWORD":   &c.RedisPassword,
		"QR_CACHE_TTL":     &c.QRCacheTTLStr,
		"SHUTDOWN_TIMEOUT": &c.ShutdownTimeoutStr,
	}
	for key, dst := range strVars {
		if v, ok := os.LookupEnv(envPrefix + key); ok {
			*dst = v
		}
	}

	intVars := map[string]*int{
		"HTTP_PORT": &c.HttpPort,
		"REDIS_DB":  &c.RedisDB,
	}
	for key, dst := range intVars {
		v, ok := os.LookupEnv(envPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
		}
		*dst = n
	}

	return nil
}

func (c *Config) finalize() (err error) {
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	if c.HttpPort == 0 {
		c.HttpPort = 6060
	}
	if c.QRCacheTTLStr == "" {
		c.QRCacheTTLStr = "24h"
	}
	if c.ShutdownTimeoutStr == "" {
		c.ShutdownTimeoutStr = "5s"
	}

	c.QRCacheTTL, err = time.ParseDuration(c.QRCacheTTLStr)
	if err != nil {
		return fmt.Errorf("invalid qr_cache_ttl: %w", err)
	}
	c.ShutdownTimeout, err = time.ParseDuration(c.ShutdownTimeoutStr)
	if err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}

	return nil
}
