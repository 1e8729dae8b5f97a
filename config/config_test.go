package config

import (
	"strings"
	"testing"
)

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr string
	}{
		{
			name: "valid",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1},
				{Name: "gemini", Enabled: true, Priority: 2},
			}},
		},
		{
			name:    "missing name",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Enabled: true, Priority: 1}}},
			wantErr: "name is required",
		},
		{
			name:    "non positive priority",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "gemini", Enabled: true}}},
			wantErr: "priority must be positive",
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "a", Enabled: true, Priority: 1},
				{Name: "b", Enabled: true, Priority: 1},
			}},
			wantErr: "duplicate priority",
		},
		{
			name: "disabled providers are not checked",
			cfg:  LLMConfig{Providers: []ProviderConfig{{Name: "gemini", Enabled: false}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := splitList([]string{"work, personal", " health ", ""})
	want := []string{"work", "personal", "health"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("VTM_TEST_KEY", "secret")

	if got := expandEnvVar("${VTM_TEST_KEY}"); got != "secret" {
		t.Errorf("expected secret, got %q", got)
	}
	if got := expandEnvVar("literal"); got != "literal" {
		t.Errorf("expected literal, got %q", got)
	}
	if got := expandEnvVar("${VTM_TEST_MISSING}"); got != "" {
		t.Errorf("expected empty for unset variable, got %q", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("RATE_LIMIT_PER_MIN", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.HTTPServer.Port)
	}
	if cfg.RateLimit.PerMin != 10 {
		t.Errorf("expected env override 10, got %d", cfg.RateLimit.PerMin)
	}
	if len(cfg.Classifier.DefaultCategories) == 0 {
		t.Errorf("expected default categories")
	}
	if len(cfg.LLM.Providers) != 1 || cfg.LLM.Providers[0].APIKey != "from-env" {
		t.Errorf("expected gemini provider from env, got %+v", cfg.LLM.Providers)
	}
	if cfg.LLM.CircuitBreaker.FailureThreshold != 5 {
		t.Errorf("expected breaker threshold 5, got %d", cfg.LLM.CircuitBreaker.FailureThreshold)
	}
}
