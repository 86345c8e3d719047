package config

import (
	"os"
	"strings"
)

type Config struct {
	Server *Server
	Auth   *Auth
}

func NewConfig() (*Config, error) {
	return NewConfigFrom(os.LookupEnv)
}

// NewConfigFrom resolves the runtime configuration from the given environment
// lookup. It is resolved once, at startup, and never mutated afterwards.
func NewConfigFrom(lookup func(string) (string, bool)) (*Config, error) {
	server, err := newServer(lookup)
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		Auth:   newAuth(lookup),
	}, nil
}

func getEnv(lookup func(string) (string, bool), key string, defaultVal string) string {
	if value, exists := lookup(key); exists && strings.TrimSpace(value) != "" {
		return value
	}

	return defaultVal
}
