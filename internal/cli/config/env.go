// Package config provides persisted CLI state for the Bullhorn CLI.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the environment variable prefix for login defaults.
const EnvPrefix = "BH_"

// LoginDefaults holds environment-sourced default values for the
// interactive login prompts. None of them are required; missing values
// simply leave the prompt without a default.
type LoginDefaults struct {
	Username     string `koanf:"user.name"`
	Password     string `koanf:"user.password"`
	ClientID     string `koanf:"api.client.id"`
	ClientSecret string `koanf:"api.client.secret"`
}

// LoadLoginDefaults reads BH_USER_NAME, BH_USER_PASSWORD,
// BH_API_CLIENT_ID, and BH_API_CLIENT_SECRET from the environment.
func LoadLoginDefaults() (*LoginDefaults, error) {
	k := koanf.New(".")

	// BH_API_CLIENT_ID -> api.client.id
	transform := func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "_", ".")
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", transform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var defaults LoginDefaults
	if err := k.Unmarshal("", &defaults); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return &defaults, nil
}
