package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rpupo63/nexusconsult-backend/errs"
	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML overlay named by CONFIG_FILE.
type FileConfig struct {
	Port                   string   `yaml:"port"`
	LogLevel               string   `yaml:"logLevel"`
	AcceptedOrigins        []string `yaml:"acceptedOrigins"`
	TrustedProxyCIDRs      []string `yaml:"trustedProxyCidrs"`
	SubmittedWindowSeconds int      `yaml:"submittedWindowSeconds"`
	SubmitLimitPerMinute   int      `yaml:"submitRateLimitPerMinute"`
	MaxUploadBytes         int64    `yaml:"maxUploadBytes"`
	BlogCategories         []string `yaml:"blogCategories"`
	PortfolioCategories    []string `yaml:"portfolioCategories"`
	TeamDepartments        []string `yaml:"teamDepartments"`
}

// ApplyFile overlays the non-zero values of the YAML file at path onto c.
// An empty path is a no-op. Environment values for connection secrets are never
// read from the file.
func ApplyFile(c *Config, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errs.NewConfigError(path, err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errs.NewConfigError(path, fmt.Errorf("parse yaml: %w", err))
	}

	if fc.Port != "" {
		c.Port = fc.Port
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if len(fc.AcceptedOrigins) > 0 {
		c.AcceptedOrigins = fc.AcceptedOrigins
	}
	if len(fc.TrustedProxyCIDRs) > 0 {
		c.TrustedProxyCIDRs = fc.TrustedProxyCIDRs
	}
	if fc.SubmittedWindowSeconds > 0 {
		c.SubmittedWindow = time.Duration(fc.SubmittedWindowSeconds) * time.Second
	}
	if fc.SubmitLimitPerMinute > 0 {
		c.SubmitLimitPerMinute = fc.SubmitLimitPerMinute
	}
	if fc.MaxUploadBytes > 0 {
		c.MaxUploadBytes = fc.MaxUploadBytes
	}
	if len(fc.BlogCategories) > 0 {
		c.Catalog.BlogCategories = fc.BlogCategories
	}
	if len(fc.PortfolioCategories) > 0 {
		c.Catalog.PortfolioCategories = fc.PortfolioCategories
	}
	if len(fc.TeamDepartments) > 0 {
		c.Catalog.TeamDepartments = fc.TeamDepartments
	}
	return nil
}
