package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	HTTPAddr    string
	GRPCAddr    string
	GinMode     string
	JWTSecret   string
	CORSOrigins []string
}

// LoadEnvFile preloads variables from .env when the file exists.
// Variables already set in the environment win.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		HTTPAddr:  getEnv("HTTP_ADDR", ":8080"),
		GRPCAddr:  getEnv("GRPC_ADDR", ":50051"),
		GinMode:   getEnv("GIN_MODE", ""),
		JWTSecret: getEnv("JWT_SECRET", ""),
	}

	for _, o := range strings.Split(getEnv("CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("invalid server config: JWT_SECRET must not be empty")
	}

	return cfg, nil
}
