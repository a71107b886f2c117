package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Values the project templates ship with. A key or URL equal to one of these is
// treated as absent.
var placeholders = map[string]struct{}{
	"your_supabase_url":                {},
	"your_supabase_anon_key":           {},
	"https://your-project.supabase.co": {},
	"your-project-url":                 {},
	"your-anon-key":                    {},
	"changeme":                         {},
}

// Config is built once at process start and passed to whatever needs it.
type Config struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	AcceptedOrigins []string
	LogLevel        string
	// Peers allowed to set X-Forwarded-For and X-Real-IP. Empty trusts none.
	TrustedProxyCIDRs []string

	SupabaseURL     string
	SupabaseAnonKey string
	// SSM parameter holding the anon key, resolved at startup when the key is unset.
	SupabaseAnonKeyParam string

	// DBType "supa" routes live traffic over a direct Postgres connection instead of REST.
	DBType string
	DB     DBConfig

	RedisAddr            string
	RedisPassword        string
	SubmitLimitPerMinute int

	SubmittedWindow time.Duration
	MaxUploadBytes  int64

	AttachmentBucket string
	AttachmentRegion string
	AttachmentPrefix string

	Catalog Catalog
}

// DBConfig describes the direct Postgres connection of a Supabase project.
type DBConfig struct {
	Host        string
	User        string
	Password    string
	Name        string
	Port        string
	ReplicaHost string
}

// Catalog lists the filter values each listing page offers. "All" is implicit.
type Catalog struct {
	BlogCategories      []string
	PortfolioCategories []string
	TeamDepartments     []string
}

func defaultCatalog() Catalog {
	return Catalog{
		BlogCategories:      []string{"Technology", "Marketing", "Design"},
		PortfolioCategories: []string{"Software", "Marketing", "Design"},
		TeamDepartments:     []string{"Leadership", "Technology", "Marketing", "Design", "Operations"},
	}
}

// Load builds the Config from an env map produced by New.
func Load(env map[string]string) Config {
	c := Config{
		Port:                 GetString(env, "PORT", "8080"),
		ReadTimeout:          time.Duration(GetInt(env, "READ_TIMEOUT_SECONDS", 180)) * time.Second,
		WriteTimeout:         time.Duration(GetInt(env, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second,
		IdleTimeout:          time.Duration(GetInt(env, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second,
		AcceptedOrigins:      splitList(GetString(env, "ACCEPTED_ORIGINS", "*")),
		LogLevel:             GetString(env, "LOG_LEVEL", "info"),
		TrustedProxyCIDRs:    splitList(GetString(env, "TRUSTED_PROXY_CIDRS", "")),
		SupabaseURL:          strings.TrimSpace(GetString(env, "SUPABASE_URL", "")),
		SupabaseAnonKey:      strings.TrimSpace(GetString(env, "SUPABASE_ANON_KEY", "")),
		SupabaseAnonKeyParam: strings.TrimSpace(GetString(env, "SUPABASE_ANON_KEY_SSM_PARAM", "")),
		DBType:               strings.ToLower(GetString(env, "DB_TYPE", "")),
		DB: DBConfig{
			Host:        GetString(env, "SUPABASE_DB_HOST", ""),
			User:        GetString(env, "SUPABASE_DB_USER", ""),
			Password:    GetString(env, "SUPABASE_DB_PASSWORD", ""),
			Name:        GetString(env, "SUPABASE_DB_NAME", ""),
			Port:        GetString(env, "SUPABASE_DB_PORT", "5432"),
			ReplicaHost: GetString(env, "SUPABASE_DB_REPLICA_HOST", ""),
		},
		RedisAddr:            GetString(env, "REDIS_ADDR", ""),
		RedisPassword:        GetString(env, "REDIS_PASSWORD", ""),
		SubmitLimitPerMinute: GetInt(env, "SUBMIT_RATE_LIMIT_PER_MINUTE", 5),
		SubmittedWindow:      time.Duration(GetInt(env, "SUBMITTED_WINDOW_SECONDS", 5)) * time.Second,
		MaxUploadBytes:       int64(GetInt(env, "MAX_UPLOAD_BYTES", 10<<20)),
		AttachmentBucket:     GetString(env, "ATTACHMENT_BUCKET", ""),
		AttachmentRegion:     GetString(env, "ATTACHMENT_REGION", "us-east-1"),
		AttachmentPrefix:     GetString(env, "ATTACHMENT_PREFIX", "contact-attachments"),
		Catalog:              defaultCatalog(),
	}
	return c
}

// IsConfigured reports whether the hosted store can be used. Both the endpoint and
// the access key must be present and neither may be a template placeholder.
func (c Config) IsConfigured() bool {
	return usable(c.SupabaseURL) && usable(c.SupabaseAnonKey)
}

func usable(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	_, placeholder := placeholders[strings.ToLower(v)]
	return !placeholder
}

// DSN returns the primary Postgres connection string.
func (c Config) DSN() string {
	return c.dsn(c.DB.Host)
}

// ReplicaDSN returns the read replica connection string, or "" when none is configured.
func (c Config) ReplicaDSN() string {
	if c.DB.ReplicaHost == "" {
		return ""
	}
	return c.dsn(c.DB.ReplicaHost)
}

func (c Config) dsn(host string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port)
}

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

func GetBool(config map[string]string, key string, defaultValue bool) bool {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asBool, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return defaultValue
	}

	return asBool
}
