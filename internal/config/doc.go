// Package config holds the two kinds of state sslauto works with:
// process-wide settings and the managed-site registry.
//
// # Settings
//
// Settings are read once at startup from the environment (with .env
// support) and treated as read-only for the lifetime of an operation.
// Every field has a working Debian/Ubuntu default, so a bare
// `sslauto setup example.com 3000` works on a stock install:
//
//	NGINX_SITES_AVAILABLE    /etc/nginx/sites-available
//	NGINX_SITES_ENABLED      /etc/nginx/sites-enabled
//	LETSENCRYPT_EMAIL_DOMAIN admin        (email local part)
//	LETSENCRYPT_WEBROOT      /var/www/html
//	SSL_PROTOCOLS            TLSv1.2 TLSv1.3
//	SSL_CIPHERS              HIGH:!aNULL:!MD5
//	DEFAULT_HTTP_PORT        80
//	DEFAULT_HTTPS_PORT       443
//	SUDO_COMMAND             sudo
//	APT_GET_COMMAND          apt-get
//	SYSTEMCTL_COMMAND        systemctl
//	PORT_TEST_TIMEOUT        10           (seconds)
//
// # Site registry
//
// The registry is a YAML file at ~/.config/sslauto/sites.yaml tracking
// which domains this tool provisioned, so `list` can report them and
// re-running setup for a known domain is recognized as a renewal. The
// registry is bookkeeping only: the source of truth for whether a site
// is served is the nginx config directory.
//
// Registry operations are not safe for concurrent use; concurrent
// invocations for the same domain may race.
package config
