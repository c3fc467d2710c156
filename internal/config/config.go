package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/reposearch/internal/github"
)

// Config holds the settings reposearch reads at startup.
type Config struct {
	BaseURL    string        `toml:"base_url" validate:"required,url"`
	UserAgent  string        `toml:"user_agent" validate:"required"`
	Token      string        `toml:"token"`
	Timeout    time.Duration `toml:"timeout" validate:"gte=0"`
	LogFile    string        `toml:"log_file"`
	LogLevel   string        `toml:"log_level" validate:"oneof=trace debug info warn error disabled"`
	ShowErrors bool          `toml:"show_errors"`
	Theme      string        `toml:"theme"`
}

const (
	defaultConfigPath = "~/.config/reposearch/config.toml"
	defaultLogFile    = "~/.local/state/reposearch/reposearch.log"
	defaultLogLevel   = "info"

	// TokenEnv supplies the token when the config file leaves it empty.
	TokenEnv = "GITHUB_TOKEN"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		BaseURL:   github.DefaultBaseURL,
		UserAgent: github.DefaultUserAgent,
		Token:     strings.TrimSpace(os.Getenv(TokenEnv)),
		LogFile:   mustExpand(defaultLogFile),
		LogLevel:  defaultLogLevel,
	}
}

// Load locates and parses the reposearch config, falling back to defaults
// when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL    string `toml:"base_url"`
		UserAgent  string `toml:"user_agent"`
		Token      string `toml:"token"`
		Timeout    string `toml:"timeout"`
		LogFile    string `toml:"log_file"`
		LogLevel   string `toml:"log_level"`
		ShowErrors bool   `toml:"show_errors"`
		Theme      string `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.BaseURL); v != "" {
		cfg.BaseURL = v
		// Unparseable values are left for Validate to report.
		if normalized, err := github.NormalizeBaseURL(v); err == nil {
			cfg.BaseURL = normalized
		}
	}
	if v := strings.TrimSpace(raw.UserAgent); v != "" {
		cfg.UserAgent = v
	}
	if v := strings.TrimSpace(raw.Token); v != "" {
		cfg.Token = v
	}
	if v := strings.TrimSpace(raw.Timeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	cfg.ShowErrors = raw.ShowErrors
	cfg.Theme = strings.TrimSpace(raw.Theme)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks field constraints and reports every failing key.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: must satisfy %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: must satisfy %s (got %q)", fe.Field(), fe.Tag(), fmt.Sprint(fe.Value())))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// ClientOptions translates the config into search client options.
func (c Config) ClientOptions() []github.Option {
	opts := []github.Option{github.WithUserAgent(c.UserAgent)}
	if c.Timeout > 0 {
		opts = append(opts, github.WithTimeout(c.Timeout))
	}
	if c.Token != "" {
		opts = append(opts, github.WithToken(c.Token))
	}
	return opts
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
