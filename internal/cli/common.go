package cli

import (
	"fmt"

	"github.com/dibbed/sslauto/internal/config"
	"github.com/dibbed/sslauto/internal/output"
	"github.com/dibbed/sslauto/internal/workflow"
)

// loadProvisioner builds a Provisioner from settings and the site
// registry through the injected dependencies.
func loadProvisioner() (Provisioner, *config.Settings, error) {
	settings := deps.LoadSettings()

	registry, err := deps.LoadRegistry()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load site registry: %w", err)
	}

	return deps.NewProvisioner(settings, registry), settings, nil
}

// requireRoot refuses system-mutating commands for unprivileged users.
func requireRoot() error {
	return deps.RootChecker.RequireRoot()
}

// emitResult prints an operation result in JSON or human-readable form
// and returns the error the command should exit with. Warnings are
// shown in both modes.
func emitResult(res workflow.Result, err error) error {
	if jsonOutput {
		if jsonErr := output.JSON(res); jsonErr != nil {
			return jsonErr
		}
		return err
	}

	for _, w := range res.Warnings {
		output.Warn("%s", w)
	}
	if err != nil {
		output.Error("%s", res.Error)
		return err
	}
	output.Success("%s", res.Message)
	return nil
}
