package cli

import (
	"errors"
	"time"

	"github.com/dibbed/sslauto/internal/config"
	"github.com/dibbed/sslauto/internal/input"
	"github.com/dibbed/sslauto/internal/workflow"
)

// MockRootChecker is a test double for RootChecker.
type MockRootChecker struct {
	IsRoot bool
	Calls  int
}

func (m *MockRootChecker) RequireRoot() error {
	m.Calls++
	if !m.IsRoot {
		return errors.New("this operation requires root privileges, run with sudo")
	}
	return nil
}

// MockProvisioner is a test double for the Provisioner interface. Each
// method records its call and delegates to an optional func override.
type MockProvisioner struct {
	SetupFunc    func(domain string, port int, sslRedirect, testPort bool) (workflow.Result, error)
	RemoveFunc   func(domain string) (workflow.Result, error)
	CheckFunc    func(domain string) (workflow.CheckResult, error)
	RenewFunc    func(domain string) (workflow.Result, error)
	RenewAllFunc func() (workflow.Result, error)

	SetupCalls    [][]interface{}
	RemoveCalls   []string
	CheckCalls    []string
	RenewCalls    []string
	RenewAllCalls int
}

func (m *MockProvisioner) Setup(domain string, port int, sslRedirect, testPort bool) (workflow.Result, error) {
	m.SetupCalls = append(m.SetupCalls, []interface{}{domain, port, sslRedirect, testPort})
	if m.SetupFunc != nil {
		return m.SetupFunc(domain, port, sslRedirect, testPort)
	}
	return workflow.Result{Success: true, Domain: domain, Message: "HTTPS configured for " + domain}, nil
}

func (m *MockProvisioner) Remove(domain string) (workflow.Result, error) {
	m.RemoveCalls = append(m.RemoveCalls, domain)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(domain)
	}
	return workflow.Result{Success: true, Domain: domain, Message: "Removed configuration for " + domain}, nil
}

func (m *MockProvisioner) CheckExpiry(domain string) (workflow.CheckResult, error) {
	m.CheckCalls = append(m.CheckCalls, domain)
	if m.CheckFunc != nil {
		return m.CheckFunc(domain)
	}
	return workflow.CheckResult{
		Result:   workflow.Result{Success: true, Domain: domain},
		NotAfter: time.Now().Add(90 * 24 * time.Hour),
		IsActive: true,
	}, nil
}

func (m *MockProvisioner) Renew(domain string) (workflow.Result, error) {
	m.RenewCalls = append(m.RenewCalls, domain)
	if m.RenewFunc != nil {
		return m.RenewFunc(domain)
	}
	return workflow.Result{Success: true, Domain: domain, Message: "Renewed certificate for " + domain}, nil
}

func (m *MockProvisioner) RenewAll() (workflow.Result, error) {
	m.RenewAllCalls++
	if m.RenewAllFunc != nil {
		return m.RenewAllFunc()
	}
	return workflow.Result{Success: true, Message: "Renewed all certificates"}, nil
}

// MockDependenciesBuilder assembles test dependencies.
type MockDependenciesBuilder struct {
	deps *Dependencies
}

// NewMockDeps creates a builder with working defaults: a root user, an
// empty in-memory registry, and a MockProvisioner that succeeds.
func NewMockDeps() *MockDependenciesBuilder {
	prov := &MockProvisioner{}
	return &MockDependenciesBuilder{
		deps: &Dependencies{
			LoadSettings: func() *config.Settings {
				return &config.Settings{
					SitesAvailable: "/etc/nginx/sites-available",
					SitesEnabled:   "/etc/nginx/sites-enabled",
					EmailLocalPart: "admin",
					Webroot:        "/var/www/html",
					HTTPPort:       80,
					HTTPSPort:      443,
				}
			},
			LoadRegistry: func() (*config.Registry, error) {
				return config.NewRegistry(""), nil
			},
			NewProvisioner: func(*config.Settings, *config.Registry) Provisioner {
				return prov
			},
			RootChecker: &MockRootChecker{IsRoot: true},
			Stdin:       input.NewStringReader("y\n"),
		},
	}
}

// WithProvisioner sets the provisioner returned by NewProvisioner.
func (b *MockDependenciesBuilder) WithProvisioner(p Provisioner) *MockDependenciesBuilder {
	b.deps.NewProvisioner = func(*config.Settings, *config.Registry) Provisioner {
		return p
	}
	return b
}

// WithSettings sets the settings loader.
func (b *MockDependenciesBuilder) WithSettings(s *config.Settings) *MockDependenciesBuilder {
	b.deps.LoadSettings = func() *config.Settings { return s }
	return b
}

// WithRegistry sets the registry loader.
func (b *MockDependenciesBuilder) WithRegistry(r *config.Registry) *MockDependenciesBuilder {
	b.deps.LoadRegistry = func() (*config.Registry, error) { return r, nil }
	return b
}

// WithRegistryError makes registry loading fail.
func (b *MockDependenciesBuilder) WithRegistryError(err error) *MockDependenciesBuilder {
	b.deps.LoadRegistry = func() (*config.Registry, error) { return nil, err }
	return b
}

// WithRootAccess sets whether root access is available.
func (b *MockDependenciesBuilder) WithRootAccess(isRoot bool) *MockDependenciesBuilder {
	b.deps.RootChecker = &MockRootChecker{IsRoot: isRoot}
	return b
}

// WithStdinInput sets the interactive input.
func (b *MockDependenciesBuilder) WithStdinInput(inputs ...string) *MockDependenciesBuilder {
	b.deps.Stdin = input.NewStringReader(inputs...)
	return b
}

// Build returns the configured Dependencies.
func (b *MockDependenciesBuilder) Build() *Dependencies {
	return b.deps
}
