package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/rpupo63/nexusconsult-backend/errs"
)

func TestIsConfigured(t *testing.T) {
	cases := []struct {
		name string
		url  string
		key  string
		want bool
	}{
		{"both present", "https://abc.supabase.co", "anon-key-123", true},
		{"missing url", "", "anon-key-123", false},
		{"missing key", "https://abc.supabase.co", "", false},
		{"whitespace key", "https://abc.supabase.co", "   ", false},
		{"placeholder url", "your_supabase_url", "anon-key-123", false},
		{"placeholder key", "https://abc.supabase.co", "your_supabase_anon_key", false},
		{"placeholder is case insensitive", "https://abc.supabase.co", "YOUR-ANON-KEY", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Load(map[string]string{"SUPABASE_URL": tc.url, "SUPABASE_ANON_KEY": tc.key})
			if got := c.IsConfigured(); got != tc.want {
				t.Fatalf("IsConfigured() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	c := Load(map[string]string{})
	if c.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", c.Port)
	}
	if c.SubmittedWindow != 5*time.Second {
		t.Fatalf("SubmittedWindow = %v, want 5s", c.SubmittedWindow)
	}
	if len(c.AcceptedOrigins) != 1 || c.AcceptedOrigins[0] != "*" {
		t.Fatalf("AcceptedOrigins = %v, want [*]", c.AcceptedOrigins)
	}
	if len(c.Catalog.PortfolioCategories) != 3 {
		t.Fatalf("unexpected portfolio categories: %v", c.Catalog.PortfolioCategories)
	}
	if c.ReplicaDSN() != "" {
		t.Fatalf("expected no replica dsn")
	}
}

func TestLoadParsesValues(t *testing.T) {
	c := Load(map[string]string{
		"PORT":                     "9090",
		"ACCEPTED_ORIGINS":         "https://a.example, https://b.example ,",
		"SUBMITTED_WINDOW_SECONDS": "2",
		"READ_TIMEOUT_SECONDS":     "not-a-number",
		"SUPABASE_DB_HOST":         "db.example",
		"SUPABASE_DB_REPLICA_HOST": "replica.example",
		"DB_TYPE":                  "SUPA",
	})
	if c.Port != "9090" {
		t.Fatalf("Port = %q", c.Port)
	}
	if len(c.AcceptedOrigins) != 2 || c.AcceptedOrigins[1] != "https://b.example" {
		t.Fatalf("AcceptedOrigins = %v", c.AcceptedOrigins)
	}
	if c.SubmittedWindow != 2*time.Second {
		t.Fatalf("SubmittedWindow = %v", c.SubmittedWindow)
	}
	if c.ReadTimeout != 180*time.Second {
		t.Fatalf("ReadTimeout should fall back to default, got %v", c.ReadTimeout)
	}
	if c.DBType != "supa" {
		t.Fatalf("DBType = %q", c.DBType)
	}
	if c.ReplicaDSN() == "" || c.DSN() == c.ReplicaDSN() {
		t.Fatalf("expected distinct primary and replica dsn")
	}
}

func TestGetBool(t *testing.T) {
	env := map[string]string{"A": "true", "B": "nope"}
	if !GetBool(env, "A", false) {
		t.Fatalf("expected A to be true")
	}
	if !GetBool(env, "B", true) {
		t.Fatalf("expected invalid value to use default")
	}
	if GetBool(nil, "A", false) {
		t.Fatalf("expected nil map to use default")
	}
}

func TestApplyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	content := []byte(`
port: "7000"
submittedWindowSeconds: 3
portfolioCategories: ["Software", "Design"]
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c := Load(map[string]string{})
	if err := ApplyFile(&c, path); err != nil {
		t.Fatalf("ApplyFile: %v", err)
	}
	if c.Port != "7000" {
		t.Fatalf("Port = %q", c.Port)
	}
	if c.SubmittedWindow != 3*time.Second {
		t.Fatalf("SubmittedWindow = %v", c.SubmittedWindow)
	}
	if len(c.Catalog.PortfolioCategories) != 2 {
		t.Fatalf("PortfolioCategories = %v", c.Catalog.PortfolioCategories)
	}
	if len(c.Catalog.BlogCategories) != 3 {
		t.Fatalf("BlogCategories should keep defaults, got %v", c.Catalog.BlogCategories)
	}
}

func TestApplyFileEmptyPathIsNoop(t *testing.T) {
	c := Load(map[string]string{})
	if err := ApplyFile(&c, ""); err != nil {
		t.Fatalf("ApplyFile: %v", err)
	}
}

func TestApplyFileMissing(t *testing.T) {
	c := Load(map[string]string{})
	if err := ApplyFile(&c, filepath.Join(t.TempDir(), "missing.yaml")); !errs.IsConfigError(err) {
		t.Fatalf("expected config error for missing file, got %v", err)
	}
}

func TestApplyFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("port: [unterminated"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	c := Load(map[string]string{})
	if err := ApplyFile(&c, path); !errs.IsConfigError(err) {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestTrustedProxyCIDRs(t *testing.T) {
	c := Load(map[string]string{"TRUSTED_PROXY_CIDRS": "10.0.0.0/8, 172.16.0.1 ,"})
	if len(c.TrustedProxyCIDRs) != 2 || c.TrustedProxyCIDRs[1] != "172.16.0.1" {
		t.Fatalf("TrustedProxyCIDRs = %v", c.TrustedProxyCIDRs)
	}
	if d := Load(nil); len(d.TrustedProxyCIDRs) != 0 {
		t.Fatalf("default should trust no proxy, got %v", d.TrustedProxyCIDRs)
	}

	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("trustedProxyCidrs: [\"192.168.0.0/16\"]\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := ApplyFile(&c, path); err != nil {
		t.Fatalf("ApplyFile: %v", err)
	}
	if len(c.TrustedProxyCIDRs) != 1 || c.TrustedProxyCIDRs[0] != "192.168.0.0/16" {
		t.Fatalf("overlay TrustedProxyCIDRs = %v", c.TrustedProxyCIDRs)
	}
}

type fakeGetter struct {
	value string
	err   error
	calls int
}

func (f *fakeGetter) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &ssm.GetParameterOutput{Parameter: &types.Parameter{Name: in.Name, Value: aws.String(f.value)}}, nil
}

func TestResolveWithFillsKey(t *testing.T) {
	c := Load(map[string]string{
		"SUPABASE_URL":                "https://abc.supabase.co",
		"SUPABASE_ANON_KEY_SSM_PARAM": "/site/anon-key",
	})
	getter := &fakeGetter{value: "resolved-key"}
	if err := resolveWith(context.Background(), &c, getter); err != nil {
		t.Fatalf("resolveWith: %v", err)
	}
	if c.SupabaseAnonKey != "resolved-key" || !c.IsConfigured() {
		t.Fatalf("expected resolved key, got %q", c.SupabaseAnonKey)
	}
}

func TestResolveWithSkipsWhenKeyPresent(t *testing.T) {
	c := Load(map[string]string{
		"SUPABASE_ANON_KEY":           "already-set",
		"SUPABASE_ANON_KEY_SSM_PARAM": "/site/anon-key",
	})
	getter := &fakeGetter{value: "other"}
	if err := resolveWith(context.Background(), &c, getter); err != nil {
		t.Fatalf("resolveWith: %v", err)
	}
	if getter.calls != 0 || c.SupabaseAnonKey != "already-set" {
		t.Fatalf("expected no lookup, calls=%d key=%q", getter.calls, c.SupabaseAnonKey)
	}
}

func TestResolveWithPropagatesError(t *testing.T) {
	c := Load(map[string]string{"SUPABASE_ANON_KEY_SSM_PARAM": "/site/anon-key"})
	boom := errors.New("access denied")
	err := resolveWith(context.Background(), &c, &fakeGetter{err: boom})
	var apiErr *errs.ApiErr
	if !errs.IsConfigError(err) || !errors.As(err, &apiErr) || !errors.Is(apiErr.Cause, boom) {
		t.Fatalf("expected config error caused by %v, got %v", boom, err)
	}
}

func TestResolveWithEmptyParameter(t *testing.T) {
	c := Load(map[string]string{"SUPABASE_ANON_KEY_SSM_PARAM": "/site/anon-key"})
	err := resolveWith(context.Background(), &c, &fakeGetter{value: ""})
	if !errors.Is(err, errs.ErrEnvironmentVariable) {
		t.Fatalf("expected environment variable error, got %v", err)
	}
	if c.SupabaseAnonKey != "" {
		t.Fatalf("key = %q", c.SupabaseAnonKey)
	}
}
