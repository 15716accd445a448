package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultAllowedOrigins are the local front-end dev servers.
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"http://localhost:5000",
}

// Server holds HTTP transport settings.
type Server struct {
	Addr           string
	CertDir        string
	AllowedOrigins []string
	TLS            bool
}

// LoadServerConfig reads server.* keys with defaults.
func LoadServerConfig() Server {
	cfg := Server{
		Addr:           viper.GetString("server.addr"),
		AllowedOrigins: viper.GetStringSlice("server.allowed_origins"),
		TLS:            viper.GetBool("server.tls"),
		CertDir:        viper.GetString("server.cert_dir"),
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8000"
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = DefaultAllowedOrigins
	}
	if cfg.CertDir == "" {
		cfg.CertDir = filepath.Join(DefaultConfigDir(), "certs")
	}
	cfg.CertDir = ExpandPath(cfg.CertDir)
	return cfg
}

// History holds request-history settings.
type History struct {
	DatabasePath string
	Enabled      bool
}

// LoadHistoryConfig reads history.enabled and database.path. History is on unless
// explicitly disabled.
func LoadHistoryConfig() History {
	enabled := true
	if viper.IsSet("history.enabled") {
		enabled = viper.GetBool("history.enabled")
	}

	path := viper.GetString("database.path")
	if path == "" {
		path = DefaultDatabasePath()
	}

	return History{Enabled: enabled, DatabasePath: ExpandPath(path)}
}
