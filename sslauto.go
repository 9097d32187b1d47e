// Package sslauto provisions HTTPS termination for domains served by
// nginx, obtaining certificates from Let's Encrypt via certbot.
//
// The package wraps the same workflow the sslauto command drives:
//
//	res, err := sslauto.Setup("example.com", 3000, sslauto.Options{})
//	if err != nil {
//		log.Fatal(res.Error)
//	}
package sslauto

import (
	"github.com/dibbed/sslauto/internal/config"
	"github.com/dibbed/sslauto/internal/workflow"
)

// Options controls optional setup behavior.
type Options struct {
	// NoRedirect keeps plain HTTP proxying to the upstream instead of
	// redirecting to HTTPS.
	NoRedirect bool
	// TestPort verifies the upstream port accepts TCP connections
	// before any configuration is written.
	TestPort bool
}

// Result reports the outcome of an operation.
type Result = workflow.Result

// CheckResult reports certificate expiry for a domain.
type CheckResult = workflow.CheckResult

func newProvisioner() (*workflow.Provisioner, error) {
	settings := config.LoadSettings()

	path, err := config.RegistryPath()
	if err != nil {
		return nil, err
	}
	registry, err := config.LoadRegistry(path)
	if err != nil {
		return nil, err
	}

	return workflow.New(settings, registry), nil
}

// Setup provisions HTTPS termination for domain, forwarding to the
// given local port. It requires nginx and certbot on the host and
// typically root privileges.
func Setup(domain string, port int, opts Options) (Result, error) {
	p, err := newProvisioner()
	if err != nil {
		return Result{Domain: domain, Error: err.Error()}, err
	}
	return p.Setup(domain, port, !opts.NoRedirect, opts.TestPort)
}

// Remove deletes the nginx configuration for domain and reloads nginx.
// The certificate is left in place.
func Remove(domain string) (Result, error) {
	p, err := newProvisioner()
	if err != nil {
		return Result{Domain: domain, Error: err.Error()}, err
	}
	return p.Remove(domain)
}

// CheckExpiry reports the certificate expiry for domain.
func CheckExpiry(domain string) (CheckResult, error) {
	p, err := newProvisioner()
	if err != nil {
		return CheckResult{Result: Result{Domain: domain, Error: err.Error()}}, err
	}
	return p.CheckExpiry(domain)
}

// Renew renews the certificate for domain and reloads nginx.
func Renew(domain string) (Result, error) {
	p, err := newProvisioner()
	if err != nil {
		return Result{Domain: domain, Error: err.Error()}, err
	}
	return p.Renew(domain)
}
