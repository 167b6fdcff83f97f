package config

import (
	"errors"
	"os"
	"strings"
)

// ErrNoAPIKey is returned when no API key is configured and Bedrock is off.
var ErrNoAPIKey = errors.New("no Anthropic API key configured")

// apiKeyEnv lists the environment variables checked for a key, in order.
var apiKeyEnv = []string{"RELM_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY"}

// KeySource represents where an API key was loaded from.
type KeySource string

const (
	KeySourceEnv     KeySource = "environment"
	KeySourceConfig  KeySource = "config_file"
	KeySourceBedrock KeySource = "aws_bedrock"
	KeySourceNone    KeySource = "none"
)

// ResolveAPIKey returns the Anthropic API key and where it came from.
// Environment variables win over the config file. With Bedrock enabled
// no key is needed and the key is empty.
func ResolveAPIKey(cfg *Config) (string, KeySource, error) {
	for _, name := range apiKeyEnv {
		if key := os.Getenv(name); key != "" {
			return key, KeySourceEnv, nil
		}
	}

	if cfg != nil {
		if key := os.ExpandEnv(cfg.Anthropic.APIKey); key != "" && !strings.HasPrefix(key, "${") {
			return key, KeySourceConfig, nil
		}
		if cfg.Anthropic.UseBedrock {
			return "", KeySourceBedrock, nil
		}
	}

	return "", KeySourceNone, ErrNoAPIKey
}

// GetAPIKey returns the Anthropic API key.
func GetAPIKey(cfg *Config) (string, error) {
	key, _, err := ResolveAPIKey(cfg)
	return key, err
}

// GetAPIKeySource returns where the API key was sourced from.
func GetAPIKeySource(cfg *Config) KeySource {
	_, source, _ := ResolveAPIKey(cfg)
	return source
}

// MaskAPIKey returns a masked version of the API key for display.
func MaskAPIKey(key string) string {
	switch {
	case key == "":
		return "(not set)"
	case len(key) <= 15:
		return "***"
	default:
		return key[:7] + "..." + key[len(key)-4:]
	}
}

// IsSecret reports whether a config key holds a credential.
func IsSecret(key string) bool {
	return strings.HasSuffix(key, "api_key")
}
