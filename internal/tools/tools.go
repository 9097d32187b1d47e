// Package tools checks for the external programs sslauto orchestrates
// and installs missing ones through the system package manager.
package tools

import (
	"fmt"
	"strings"

	"github.com/dibbed/sslauto/internal/executor"
	"github.com/dibbed/sslauto/internal/logger"
)

// Detector locates external tools and attempts installation when one
// is absent.
type Detector struct {
	aptGet string
	exec   executor.CommandExecutor
}

// NewDetector creates a Detector using the given package-manager
// command. The executor should carry the privilege-escalation prefix
// so install commands can mutate package state.
func NewDetector(aptGet string, exec executor.CommandExecutor) *Detector {
	return &Detector{aptGet: aptGet, exec: exec}
}

// IsInstalled reports whether the tool is on PATH.
func (d *Detector) IsInstalled(tool string) bool {
	_, err := d.exec.LookPath(tool)
	return err == nil
}

// EnsureInstalled checks for a tool and, when absent, tries to install
// it via the package manager. It returns whether the tool is present
// after the attempt plus a warning describing any install that
// happened or failed. Install failure is reported, not fatal; the
// caller decides whether to abort.
func (d *Detector) EnsureInstalled(tool string) (bool, string) {
	if d.IsInstalled(tool) {
		return true, ""
	}

	logger.Info("%s not found, attempting install via %s", tool, d.aptGet)

	if output, err := d.exec.Execute(d.aptGet, "update"); err != nil {
		logger.Warn("%s update failed: %s", d.aptGet, strings.TrimSpace(string(output)))
	}

	output, err := d.exec.Execute(d.aptGet, "install", "-y", tool)
	if err != nil {
		return false, fmt.Sprintf("failed to install %s: %s", tool, strings.TrimSpace(string(output)))
	}

	if !d.IsInstalled(tool) {
		return false, fmt.Sprintf("%s still missing after install attempt", tool)
	}
	return true, fmt.Sprintf("%s was installed automatically", tool)
}
