package config

import (
	"errors"
	"testing"
)

func TestResolveAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		cfg        *Config
		wantKey    string
		wantSource KeySource
		wantErr    error
	}{
		{
			name:       "anthropic env",
			env:        map[string]string{"ANTHROPIC_API_KEY": "sk-ant-env"},
			cfg:        &Config{},
			wantKey:    "sk-ant-env",
			wantSource: KeySourceEnv,
		},
		{
			name: "relm env wins",
			env: map[string]string{
				"RELM_ANTHROPIC_API_KEY": "sk-ant-relm",
				"ANTHROPIC_API_KEY":      "sk-ant-env",
			},
			cfg:        &Config{},
			wantKey:    "sk-ant-relm",
			wantSource: KeySourceEnv,
		},
		{
			name:       "config file",
			cfg:        &Config{Anthropic: AnthropicConfig{APIKey: "sk-ant-config-key"}},
			wantKey:    "sk-ant-config-key",
			wantSource: KeySourceConfig,
		},
		{
			name:       "unexpanded reference ignored",
			cfg:        &Config{Anthropic: AnthropicConfig{APIKey: "${RELM_TEST_UNSET_VAR}"}},
			wantSource: KeySourceNone,
			wantErr:    ErrNoAPIKey,
		},
		{
			name:       "bedrock needs no key",
			cfg:        &Config{Anthropic: AnthropicConfig{UseBedrock: true}},
			wantSource: KeySourceBedrock,
		},
		{
			name:       "nothing configured",
			cfg:        &Config{},
			wantSource: KeySourceNone,
			wantErr:    ErrNoAPIKey,
		},
		{
			name:       "nil config",
			wantSource: KeySourceNone,
			wantErr:    ErrNoAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RELM_ANTHROPIC_API_KEY", "")
			t.Setenv("ANTHROPIC_API_KEY", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			key, source, err := ResolveAPIKey(tt.cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ResolveAPIKey() error = %v, want %v", err, tt.wantErr)
			}
			if key != tt.wantKey {
				t.Errorf("ResolveAPIKey() key = %q, want %q", key, tt.wantKey)
			}
			if source != tt.wantSource {
				t.Errorf("ResolveAPIKey() source = %v, want %v", source, tt.wantSource)
			}
			if got := GetAPIKeySource(tt.cfg); got != tt.wantSource {
				t.Errorf("GetAPIKeySource() = %v, want %v", got, tt.wantSource)
			}
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{"valid key", "sk-ant-REDACTED", "sk-ant-...wxyz"},
		{"empty key", "", "(not set)"},
		{"short key", "short", "***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskAPIKey(tt.key); got != tt.expected {
				t.Errorf("MaskAPIKey() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIsSecret(t *testing.T) {
	if !IsSecret("anthropic.api_key") {
		t.Error("anthropic.api_key should be secret")
	}
	if IsSecret("anthropic.model") {
		t.Error("anthropic.model should not be secret")
	}
}
