package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dibbed/sslauto/internal/logger"
)

// Settings is the process-wide configuration, loaded once at startup
// and read-only afterwards.
type Settings struct {
	SitesAvailable string // nginx sites-available directory
	SitesEnabled   string // nginx sites-enabled directory

	EmailLocalPart string // local part of the Let's Encrypt notification address
	Webroot        string // ACME webroot for HTTP-01 challenges

	SSLProtocols string // value for the ssl_protocols directive
	SSLCiphers   string // value for the ssl_ciphers directive

	HTTPPort  int
	HTTPSPort int

	SudoCommand      string // privilege-escalation command prefix, empty disables
	AptGetCommand    string // package manager command
	SystemctlCommand string // service controller command

	PortTestTimeout time.Duration
}

// LoadSettings reads settings from the environment, first merging a
// .env file from the working directory when one exists.
func LoadSettings() *Settings {
	// Absent .env is the normal case, not an error.
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded settings overrides from .env")
	}

	return &Settings{
		SitesAvailable:   getEnv("NGINX_SITES_AVAILABLE", "/etc/nginx/sites-available"),
		SitesEnabled:     getEnv("NGINX_SITES_ENABLED", "/etc/nginx/sites-enabled"),
		EmailLocalPart:   getEnv("LETSENCRYPT_EMAIL_DOMAIN", "admin"),
		Webroot:          getEnv("LETSENCRYPT_WEBROOT", "/var/www/html"),
		SSLProtocols:     getEnv("SSL_PROTOCOLS", "TLSv1.2 TLSv1.3"),
		SSLCiphers:       getEnv("SSL_CIPHERS", "HIGH:!aNULL:!MD5"),
		HTTPPort:         getEnvInt("DEFAULT_HTTP_PORT", 80),
		HTTPSPort:        getEnvInt("DEFAULT_HTTPS_PORT", 443),
		SudoCommand:      getEnv("SUDO_COMMAND", "sudo"),
		AptGetCommand:    getEnv("APT_GET_COMMAND", "apt-get"),
		SystemctlCommand: getEnv("SYSTEMCTL_COMMAND", "systemctl"),
		PortTestTimeout:  time.Duration(getEnvInt("PORT_TEST_TIMEOUT", 10)) * time.Second,
	}
}

// Email returns the Let's Encrypt notification address for a domain,
// combining the configured local part with the domain itself.
func (s *Settings) Email(domain string) string {
	return s.EmailLocalPart + "@" + domain
}

// getEnv retrieves an environment variable or returns a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// getEnvInt retrieves an integer environment variable, falling back on
// absence or a non-numeric value.
func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		logger.Warn("ignoring non-numeric %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}
