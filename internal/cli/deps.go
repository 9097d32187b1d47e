package cli

import (
	"os"

	"github.com/dibbed/sslauto/internal/config"
	"github.com/dibbed/sslauto/internal/errors"
	"github.com/dibbed/sslauto/internal/input"
	"github.com/dibbed/sslauto/internal/workflow"
)

// Provisioner is the slice of the workflow surface the CLI drives.
type Provisioner interface {
	Setup(domain string, port int, sslRedirect, testPort bool) (workflow.Result, error)
	Remove(domain string) (workflow.Result, error)
	CheckExpiry(domain string) (workflow.CheckResult, error)
	Renew(domain string) (workflow.Result, error)
	RenewAll() (workflow.Result, error)
}

// Dependencies aggregates the CLI's external collaborators for
// testability.
type Dependencies struct {
	LoadSettings   func() *config.Settings
	LoadRegistry   func() (*config.Registry, error)
	NewProvisioner func(*config.Settings, *config.Registry) Provisioner
	RootChecker    RootChecker
	Stdin          input.Reader
}

// RootChecker checks for root privileges.
type RootChecker interface {
	RequireRoot() error
}

// Package-level dependencies, replaceable for testing.
var deps = defaultDeps()

func defaultDeps() *Dependencies {
	return &Dependencies{
		LoadSettings: config.LoadSettings,
		LoadRegistry: func() (*config.Registry, error) {
			path, err := config.RegistryPath()
			if err != nil {
				return nil, err
			}
			return config.LoadRegistry(path)
		},
		NewProvisioner: func(settings *config.Settings, registry *config.Registry) Provisioner {
			return workflow.New(settings, registry)
		},
		RootChecker: &realRootChecker{},
		Stdin:       input.NewStdinReader(),
	}
}

// SetDeps replaces the package dependencies (for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// ResetDeps restores the real dependencies.
func ResetDeps() {
	deps = defaultDeps()
}

type realRootChecker struct{}

var errRootRequired = errors.Wrap(errors.CodeInternal,
	"this operation requires root privileges, run with sudo", nil)

func (r *realRootChecker) RequireRoot() error {
	if os.Geteuid() != 0 {
		return errRootRequired
	}
	return nil
}
