// Package workflow sequences the provisioning steps: validation, tool
// checks, the optional port probe, config writes, certificate
// issuance, and the compensating rollback that undoes a half-finished
// setup.
//
// Steps are not atomic across the external tools, so ordering is
// deliberate: nothing touches the filesystem until validation and tool
// checks pass, and the initial config write is undone if issuance
// fails afterwards.
package workflow

import (
	"fmt"
	"time"

	"github.com/dibbed/sslauto/internal/config"
	"github.com/dibbed/sslauto/internal/errors"
	"github.com/dibbed/sslauto/internal/executor"
	"github.com/dibbed/sslauto/internal/logger"
	"github.com/dibbed/sslauto/internal/nginx"
	"github.com/dibbed/sslauto/internal/probe"
	"github.com/dibbed/sslauto/internal/ssl"
	"github.com/dibbed/sslauto/internal/template"
	"github.com/dibbed/sslauto/internal/tools"
	"github.com/dibbed/sslauto/internal/validate"
)

// SiteWriter writes, activates, and removes nginx site configs.
type SiteWriter interface {
	WriteSite(domain, content string) error
	RemoveSite(domain string) error
	Exists(domain string) bool
	ConfPath(domain string) string
	Test() error
	Reload() error
}

// CertClient issues and inspects certificates via external tools.
type CertClient interface {
	Issue(domain, email string) (*ssl.Cert, error)
	Renew(domain string) error
	RenewAll() error
	CertPaths(domain string) *ssl.Cert
	Expiry(domain string) (time.Time, error)
}

// ToolChecker verifies external tool presence, installing on absence.
type ToolChecker interface {
	EnsureInstalled(tool string) (bool, string)
}

// PortProbe tests upstream reachability.
type PortProbe func(port int, timeout time.Duration) bool

// Provisioner runs the setup, remove, check, and renew operations for
// one configuration.
type Provisioner struct {
	settings *config.Settings
	sites    SiteWriter
	certs    CertClient
	tools    ToolChecker
	probe    PortProbe
	registry *config.Registry
	now      func() time.Time
}

// New wires a Provisioner from settings and a registry, constructing
// the real collaborators over a sudo-wrapped system executor.
func New(settings *config.Settings, registry *config.Registry) *Provisioner {
	sudoExec := executor.NewSudo(settings.SudoCommand, executor.NewSystemExecutor())

	return &Provisioner{
		settings: settings,
		sites:    nginx.New(settings.SitesAvailable, settings.SitesEnabled, settings.SystemctlCommand, sudoExec),
		certs:    ssl.NewClient(settings.Webroot, sudoExec),
		tools:    tools.NewDetector(settings.AptGetCommand, sudoExec),
		probe:    probe.Reachable,
		registry: registry,
		now:      time.Now,
	}
}

// NewWithCollaborators wires a Provisioner from explicit collaborators,
// for tests.
func NewWithCollaborators(
	settings *config.Settings,
	sites SiteWriter,
	certs CertClient,
	toolChecker ToolChecker,
	portProbe PortProbe,
	registry *config.Registry,
) *Provisioner {
	return &Provisioner{
		settings: settings,
		sites:    sites,
		certs:    certs,
		tools:    toolChecker,
		probe:    portProbe,
		registry: registry,
		now:      time.Now,
	}
}

// requiredTools are the external programs setup depends on.
var requiredTools = []string{"nginx", "certbot"}

// Setup provisions HTTPS termination for domain forwarding to port.
//
// The sequence is: validate, ensure tools, optionally probe the port,
// write the HTTP-only challenge config, issue the certificate, then
// rewrite to the final TLS config. If issuance fails the just-written
// config is rolled back so no half-configured site remains.
//
// Re-running setup for a known domain overwrites the config and
// re-issues the certificate; no manual cleanup is needed.
func (p *Provisioner) Setup(rawDomain string, port int, sslRedirect, testPort bool) (Result, error) {
	domain, err := validate.Domain(rawDomain)
	if err != nil {
		return failure(rawDomain, err), err
	}
	if err := validate.Port(port); err != nil {
		return failure(domain, err), err
	}

	var warnings []string
	for _, tool := range requiredTools {
		present, warning := p.tools.EnsureInstalled(tool)
		if warning != "" {
			warnings = append(warnings, warning)
		}
		if !present {
			err := errors.ToolMissing(tool)
			return failureWarn(domain, err, warnings), err
		}
	}

	if testPort {
		logger.Debug("probing upstream port %d", port)
		if !p.probe(port, p.settings.PortTestTimeout) {
			err := errors.Unreachable(port)
			return failureWarn(domain, err, warnings), err
		}
	}

	rollback := func() {
		logger.Info("rolling back site config for %s", domain)
		if err := p.sites.RemoveSite(domain); err != nil {
			logger.ErrorErr(err, "rollback: failed to remove site config")
		}
		if err := p.sites.Reload(); err != nil {
			logger.ErrorErr(err, "rollback: failed to reload nginx")
		}
	}

	// Phase 1: HTTP-only config so the ACME HTTP-01 challenge can be
	// served before any certificate exists.
	if err := p.writeAndApply(domain, template.KindHTTP, port, sslRedirect, nil); err != nil {
		rollback()
		return failureWarn(domain, err, warnings), err
	}

	cert, err := p.certs.Issue(domain, p.settings.Email(domain))
	if err != nil {
		rollback()
		return failureWarn(domain, err, warnings), err
	}

	// Phase 2: final TLS config referencing the issued certificate.
	// No rollback past this point: the certificate exists and the
	// failure is reported for the operator to resolve.
	if err := p.writeAndApply(domain, template.KindSSL, port, sslRedirect, cert); err != nil {
		return failureWarn(domain, err, warnings), err
	}

	p.registry.Put(&config.Site{
		Domain:   domain,
		Port:     port,
		Redirect: sslRedirect,
		CertPath: cert.CertPath,
		KeyPath:  cert.KeyPath,
	})
	if err := p.registry.Save(); err != nil {
		warnings = append(warnings, fmt.Sprintf("site provisioned but registry save failed: %v", err))
	}

	return Result{
		Success:  true,
		Domain:   domain,
		ConfPath: p.sites.ConfPath(domain),
		Message:  fmt.Sprintf("HTTPS termination configured for %s, forwarding to port %d", domain, port),
		Warnings: warnings,
	}, nil
}

// writeAndApply renders one config variant, writes it, validates the
// nginx syntax, and reloads.
func (p *Provisioner) writeAndApply(domain string, kind template.Kind, port int, redirect bool, cert *ssl.Cert) error {
	data := template.Data{
		Domain:    domain,
		Port:      port,
		HTTPPort:  p.settings.HTTPPort,
		HTTPSPort: p.settings.HTTPSPort,
		Redirect:  redirect,
		Webroot:   p.settings.Webroot,
		Protocols: p.settings.SSLProtocols,
		Ciphers:   p.settings.SSLCiphers,
	}
	if cert != nil {
		data.CertPath = cert.CertPath
		data.KeyPath = cert.KeyPath
		data.ChainPath = cert.ChainPath
	}

	content, err := template.Render(kind, data)
	if err != nil {
		return errors.WrapDomain(errors.CodeConfigWrite, domain, "failed to render site config", err)
	}

	if err := p.sites.WriteSite(domain, content); err != nil {
		return err
	}
	if err := p.sites.Test(); err != nil {
		return err
	}
	return p.sites.Reload()
}

// Remove deletes the serving configuration for domain and reloads
// nginx. The certificate itself is left in certbot storage; removal is
// tolerant of a site that was never configured.
func (p *Provisioner) Remove(rawDomain string) (Result, error) {
	domain, err := validate.Domain(rawDomain)
	if err != nil {
		return failure(rawDomain, err), err
	}

	if err := p.sites.RemoveSite(domain); err != nil {
		return failure(domain, err), err
	}
	if err := p.sites.Reload(); err != nil {
		return failure(domain, err), err
	}

	p.registry.Delete(domain)
	if err := p.registry.Save(); err != nil {
		logger.Warn("site removed but registry save failed: %v", err)
	}

	return Result{
		Success: true,
		Domain:  domain,
		Message: fmt.Sprintf("site configuration for %s removed, certificate left in place", domain),
	}, nil
}

// CheckExpiry inspects the stored certificate for domain and reports
// whether it is still valid. An expired certificate is a successful
// check with IsActive false.
func (p *Provisioner) CheckExpiry(rawDomain string) (CheckResult, error) {
	domain, err := validate.Domain(rawDomain)
	if err != nil {
		return CheckResult{Result: failure(rawDomain, err)}, err
	}

	notAfter, err := p.certs.Expiry(domain)
	if err != nil {
		return CheckResult{Result: failure(domain, err)}, err
	}

	isActive := notAfter.After(p.now())
	return CheckResult{
		Result: Result{
			Success: true,
			Domain:  domain,
			Message: fmt.Sprintf("certificate for %s expires %s", domain, notAfter.Format(time.RFC3339)),
		},
		NotAfter: notAfter,
		IsActive: isActive,
	}, nil
}

// Renew renews the certificate for domain and reloads nginx so the new
// material is served.
func (p *Provisioner) Renew(rawDomain string) (Result, error) {
	domain, err := validate.Domain(rawDomain)
	if err != nil {
		return failure(rawDomain, err), err
	}

	if err := p.certs.Renew(domain); err != nil {
		return failure(domain, err), err
	}
	if err := p.sites.Reload(); err != nil {
		return failure(domain, err), err
	}

	return Result{
		Success: true,
		Domain:  domain,
		Message: fmt.Sprintf("certificate for %s renewed", domain),
	}, nil
}

// RenewAll renews every managed certificate and reloads nginx once.
func (p *Provisioner) RenewAll() (Result, error) {
	if err := p.certs.RenewAll(); err != nil {
		return failure("", err), err
	}
	if err := p.sites.Reload(); err != nil {
		return failure("", err), err
	}

	return Result{
		Success: true,
		Message: "all certificates renewed",
	}, nil
}
