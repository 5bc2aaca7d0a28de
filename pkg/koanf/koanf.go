package koanf

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

type HttpServer struct {
	Address string `json:"address,omitempty" koanf:"address"`
}

// Provide reads configuration for a service from the environment, layered on
// top of the given defaults. Keys are lower-cased env names, with "__" as the
// nesting separator (HTTP__ADDRESS -> http.address).
func Provide[T any](prefix string, defaultValue T) T {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultValue, "koanf"), nil); err != nil {
		panic(fmt.Errorf("failed to load default config: %w", err))
	}

	envPrefix := ""
	if prefix != "" {
		envPrefix = strings.ToUpper(prefix) + "_"
	}
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	}), nil); err != nil {
		panic(fmt.Errorf("failed to load config from environment: %w", err))
	}

	var cnf T
	if err := k.Unmarshal("", &cnf); err != nil {
		panic(fmt.Errorf("failed to unmarshal config: %w", err))
	}
	return cnf
}
