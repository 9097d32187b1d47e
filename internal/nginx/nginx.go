// Package nginx writes, activates, and removes per-domain site
// configuration files and drives the nginx process through its CLI.
//
// A site lives as <domain>.conf in the sites-available directory and
// is activated by a symlink of the same name in sites-enabled. File
// operations are done directly (the CLI enforces root before calling
// in); nginx itself is only touched through the executor so tests can
// mock it.
package nginx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dibbed/sslauto/internal/errors"
	"github.com/dibbed/sslauto/internal/executor"
)

// Server manages nginx site configuration for one pair of config
// directories.
type Server struct {
	available string
	enabled   string
	systemctl string
	exec      executor.CommandExecutor
}

// New creates a Server writing to the given directories. The executor
// should already carry the privilege-escalation prefix when one is
// configured.
func New(available, enabled, systemctl string, exec executor.CommandExecutor) *Server {
	return &Server{
		available: available,
		enabled:   enabled,
		systemctl: systemctl,
		exec:      exec,
	}
}

// ConfPath returns the sites-available path for a domain.
func (s *Server) ConfPath(domain string) string {
	return filepath.Join(s.available, domain+".conf")
}

// enabledPath returns the sites-enabled symlink path for a domain.
func (s *Server) enabledPath(domain string) string {
	return filepath.Join(s.enabled, domain+".conf")
}

// WriteSite writes the site configuration for a domain and activates
// it. An existing configuration for the same domain is overwritten and
// re-linked, so repeated setups are idempotent.
func (s *Server) WriteSite(domain, content string) error {
	for _, dir := range []string{s.available, s.enabled} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WrapDomain(errors.CodeConfigWrite, domain, "failed to create config directory", err)
		}
	}

	confPath := s.ConfPath(domain)
	if err := os.WriteFile(confPath, []byte(content), 0644); err != nil {
		return errors.WrapDomain(errors.CodeConfigWrite, domain, "failed to write site config", err)
	}

	linkPath := s.enabledPath(domain)
	if _, err := os.Lstat(linkPath); err == nil {
		if err := os.Remove(linkPath); err != nil {
			return errors.WrapDomain(errors.CodeConfigWrite, domain, "failed to replace enabled link", err)
		}
	}
	if err := os.Symlink(confPath, linkPath); err != nil {
		return errors.WrapDomain(errors.CodeConfigWrite, domain, "failed to enable site", err)
	}

	return nil
}

// RemoveSite deletes the available config and the enabled link for a
// domain. Absent entries are tolerated: removing a site that was never
// configured succeeds.
func (s *Server) RemoveSite(domain string) error {
	linkPath := s.enabledPath(domain)
	if info, err := os.Lstat(linkPath); err == nil {
		// Only remove what looks like our activation link.
		if info.Mode()&os.ModeSymlink == 0 {
			return errors.WrapDomain(errors.CodeConfigWrite, domain,
				"enabled entry is not a symlink, refusing to remove", nil)
		}
		if err := os.Remove(linkPath); err != nil {
			return errors.WrapDomain(errors.CodeConfigWrite, domain, "failed to remove enabled link", err)
		}
	}

	confPath := s.ConfPath(domain)
	if err := os.Remove(confPath); err != nil && !os.IsNotExist(err) {
		return errors.WrapDomain(errors.CodeConfigWrite, domain, "failed to remove site config", err)
	}

	return nil
}

// Exists reports whether a site config is present in sites-available.
func (s *Server) Exists(domain string) bool {
	_, err := os.Stat(s.ConfPath(domain))
	return err == nil
}

// List returns the domains with a config file in sites-available.
func (s *Server) List() ([]string, error) {
	entries, err := os.ReadDir(s.available)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read sites-available: %w", err)
	}

	domains := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".conf") {
			continue
		}
		domains = append(domains, strings.TrimSuffix(name, ".conf"))
	}
	return domains, nil
}

// Test validates the nginx configuration syntax.
func (s *Server) Test() error {
	output, err := s.exec.Execute("nginx", "-t")
	if err != nil {
		return errors.Wrap(errors.CodeConfigWrite, fmt.Sprintf("nginx config test failed: %s", strings.TrimSpace(string(output))), err)
	}
	return nil
}

// Reload reloads nginx so configuration changes take effect without
// downtime. Falls back to nginx -s reload when the service controller
// is unavailable.
func (s *Server) Reload() error {
	output, err := s.exec.Execute(s.systemctl, "reload", "nginx")
	if err != nil {
		output, err = s.exec.Execute("nginx", "-s", "reload")
		if err != nil {
			return errors.Wrap(errors.CodeReload, fmt.Sprintf("failed to reload nginx: %s", strings.TrimSpace(string(output))), err)
		}
	}
	return nil
}
