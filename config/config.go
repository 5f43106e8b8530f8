package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultConfigPath = "config.json"
	defaultAPIBaseURL = "https://discord.com/api/v10"
	defaultCDNBaseURL = "https://cdn.discordapp.com"
	defaultLogFile    = "logs/invite-inspector.log"
	defaultTimeout    = 15 * time.Second
)

// Config holds the project config values
type Config struct {
	Token       string
	APIBaseURL  string
	CDNBaseURL  string
	HTTPTimeout time.Duration
	Env         string
	LogFile     string
	ExitOnError bool
}

// CredentialLoadError is returned when no bot token could be loaded
type CredentialLoadError struct {
	Path string
	Err  error
}

func (e *CredentialLoadError) Error() string {
	return fmt.Sprintf("load credentials from %s: %v", e.Path, e.Err)
}

func (e *CredentialLoadError) Unwrap() error {
	return e.Err
}

type fileConfig struct {
	Token string `json:"token"`
}

// New loads the configuration and installs the global zap logger
func New() (*Config, error) {
	// a missing .env is fine, the process environment is used as is
	_ = godotenv.Load()

	conf, err := Load(envOr("INVITE_CONFIG", defaultConfigPath))
	if err != nil {
		return nil, err
	}

	logger, err := setLogger(conf.Env, conf.LogFile)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	_ = zap.ReplaceGlobals(logger)

	return conf, nil
}

// Load builds a Config from the JSON file at path and the environment.
// DISCORD_TOKEN takes precedence over the file, which is then not read.
func Load(path string) (*Config, error) {
	conf := &Config{
		Token:      os.Getenv("DISCORD_TOKEN"),
		APIBaseURL: strings.TrimRight(envOr("DISCORD_API_URL", defaultAPIBaseURL), "/"),
		CDNBaseURL: strings.TrimRight(envOr("DISCORD_CDN_URL", defaultCDNBaseURL), "/"),
		Env:        envOr("ENV", "local"),
		LogFile:    defaultLogFile,
	}
	if v, ok := os.LookupEnv("LOG_FILE"); ok {
		conf.LogFile = v
	}

	timeout, err := durationEnv("HTTP_TIMEOUT", defaultTimeout)
	if err != nil {
		return nil, err
	}
	conf.HTTPTimeout = timeout

	exitOnError, err := boolEnv("EXIT_ON_ERROR", false)
	if err != nil {
		return nil, err
	}
	conf.ExitOnError = exitOnError

	if conf.Token == "" {
		token, err := readToken(path)
		if err != nil {
			return nil, &CredentialLoadError{Path: path, Err: err}
		}
		conf.Token = token
	}

	return conf, nil
}

func readToken(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var fc fileConfig
	if err := json.Unmarshal(b, &fc); err != nil {
		return "", fmt.Errorf("parse config: %w", err)
	}
	if strings.TrimSpace(fc.Token) == "" {
		return "", fmt.Errorf("token is empty")
	}
	return fc.Token, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
