package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"go-stat-explorer/internal/genesis"
	"go-stat-explorer/pkg/utils"

	"github.com/spf13/viper"
)

// Default values for server configuration. The explore operation
// itself takes no flags; only deployment concerns are configurable.
const (
	DefaultAddr      = ":8080"
	DefaultDBPath    = "explorer.db"
	DefaultOutputDir = "output"
	DefaultTimeout   = 30 * time.Second
)

// Config holds the runtime configuration of the server.
type Config struct {
	Addr            string        // listen address
	GraphQLEndpoint string        // remote statistics service
	RequestTimeout  time.Duration // per-call HTTP timeout
	DBPath          string        // submission-history database
	OutputDir       string        // snippet export directory
}

// Load reads configuration from an optional .explorer.yaml, the
// EXPLORER_* environment and built-in defaults, in that order of
// precedence.
func Load() *Config {
	v := viper.New()

	v.SetConfigName(".explorer")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	v.SetEnvPrefix("EXPLORER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("graphql-endpoint", genesis.DefaultEndpoint)
	v.SetDefault("request-timeout", "30s")
	v.SetDefault("db-path", DefaultDBPath)
	v.SetDefault("output-dir", DefaultOutputDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("⚠️ Could not read config file: %v\n", err)
		}
	}

	return &Config{
		Addr:            v.GetString("addr"),
		GraphQLEndpoint: v.GetString("graphql-endpoint"),
		RequestTimeout:  utils.ParseDuration(v.GetString("request-timeout")),
		DBPath:          v.GetString("db-path"),
		OutputDir:       v.GetString("output-dir"),
	}
}
