package ssl

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dibbed/sslauto/internal/errors"
	"github.com/dibbed/sslauto/internal/executor"
)

// Cert holds the certbot-managed file paths for one domain.
type Cert struct {
	Domain    string
	CertPath  string
	KeyPath   string
	ChainPath string
}

// DefaultLiveDir is where certbot keeps live certificate material.
const DefaultLiveDir = "/etc/letsencrypt/live"

// Client invokes certbot and openssl through the executor.
type Client struct {
	liveDir string
	webroot string
	exec    executor.CommandExecutor
}

// NewClient creates a Client issuing webroot challenges from webroot.
// The executor should carry the privilege-escalation prefix.
func NewClient(webroot string, exec executor.CommandExecutor) *Client {
	return &Client{
		liveDir: DefaultLiveDir,
		webroot: webroot,
		exec:    exec,
	}
}

// NewClientWithLiveDir creates a Client reading certificates from a
// custom directory, for tests.
func NewClientWithLiveDir(liveDir, webroot string, exec executor.CommandExecutor) *Client {
	return &Client{liveDir: liveDir, webroot: webroot, exec: exec}
}

// CertPaths returns the live certificate paths for a domain.
func (c *Client) CertPaths(domain string) *Cert {
	dir := filepath.Join(c.liveDir, domain)
	return &Cert{
		Domain:    domain,
		CertPath:  filepath.Join(dir, "fullchain.pem"),
		KeyPath:   filepath.Join(dir, "privkey.pem"),
		ChainPath: filepath.Join(dir, "chain.pem"),
	}
}

// Issue obtains a certificate for domain using the webroot challenge.
// The challenge directory is created first so certbot can place its
// token. Failure wraps certbot's combined output.
func (c *Client) Issue(domain, email string) (*Cert, error) {
	challengeDir := filepath.Join(c.webroot, ".well-known", "acme-challenge")
	if output, err := c.exec.Execute("mkdir", "-p", challengeDir); err != nil {
		return nil, errors.WrapDomain(errors.CodeIssuance, domain,
			fmt.Sprintf("failed to prepare challenge directory: %s", strings.TrimSpace(string(output))), err)
	}

	args := []string{
		"certonly",
		"--webroot",
		"-w", c.webroot,
		"-d", domain,
		"--email", email,
		"--agree-tos",
		"--non-interactive",
	}
	if output, err := c.exec.Execute("certbot", args...); err != nil {
		return nil, errors.Issuance(domain, fmt.Errorf("%s", strings.TrimSpace(string(output))))
	}

	return c.CertPaths(domain), nil
}

// Renew renews the certificate for one domain.
func (c *Client) Renew(domain string) error {
	output, err := c.exec.Execute("certbot", "renew", "--cert-name", domain, "--non-interactive")
	if err != nil {
		return errors.Issuance(domain, fmt.Errorf("renew failed: %s", strings.TrimSpace(string(output))))
	}
	return nil
}

// RenewAll renews every certbot-managed certificate.
func (c *Client) RenewAll() error {
	output, err := c.exec.Execute("certbot", "renew", "--non-interactive")
	if err != nil {
		return errors.Wrap(errors.CodeIssuance, fmt.Sprintf("renew failed: %s", strings.TrimSpace(string(output))), err)
	}
	return nil
}

// Delete removes a certificate from certbot storage. Not called during
// remove; kept for operators who want full cleanup.
func (c *Client) Delete(domain string) error {
	output, err := c.exec.Execute("certbot", "delete", "--cert-name", domain, "--non-interactive")
	if err != nil {
		return errors.WrapDomain(errors.CodeIssuance, domain,
			fmt.Sprintf("delete failed: %s", strings.TrimSpace(string(output))), err)
	}
	return nil
}

// List returns the domains certbot currently manages, parsed from
// `certbot certificates`.
func (c *Client) List() ([]string, error) {
	output, err := c.exec.Execute("certbot", "certificates")
	if err != nil {
		return nil, errors.Wrap(errors.CodeIssuance,
			fmt.Sprintf("certbot certificates failed: %s", strings.TrimSpace(string(output))), err)
	}

	var domains []string
	for _, line := range strings.Split(string(output), "\n") {
		if !strings.Contains(line, "Certificate Name:") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) == 2 {
			domains = append(domains, strings.TrimSpace(parts[1]))
		}
	}
	return domains, nil
}
