package cli

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dibbed/sslauto/internal/config"
	"github.com/dibbed/sslauto/internal/executor"
	"github.com/dibbed/sslauto/internal/nginx"
	"github.com/dibbed/sslauto/internal/output"
	"github.com/dibbed/sslauto/internal/ssl"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system status and diagnose issues",
	Long: `Run diagnostic checks on the system and the managed domains.

Checks:
  - nginx, certbot, and openssl installation
  - nginx configuration syntax
  - site and webroot directories
  - per-domain configuration, certificate presence, and expiry

Examples:
  sslauto doctor
  sslauto doctor --json`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// Check is a single diagnostic result.
type Check struct {
	Status  string `json:"status"` // "success", "warning", "error"
	Message string `json:"message"`
}

// DomainStatus holds the diagnostic results for one managed domain.
type DomainStatus struct {
	Domain string  `json:"domain"`
	Checks []Check `json:"checks"`
}

// DoctorReport contains all diagnostic results.
type DoctorReport struct {
	SystemRequirements []Check        `json:"system_requirements"`
	Configuration      []Check        `json:"configuration"`
	Domains            []DomainStatus `json:"domains"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	exec := executor.NewSystemExecutor()
	settings := deps.LoadSettings()

	registry, err := deps.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load site registry: %w", err)
	}

	server := nginx.New(settings.SitesAvailable, settings.SitesEnabled, settings.SystemctlCommand, exec)
	certs := ssl.NewClient(settings.Webroot, exec)

	report := &DoctorReport{}
	report.SystemRequirements = checkSystemRequirements(exec)
	report.Configuration = checkConfiguration(settings, server)
	report.Domains = checkDomains(registry, server, certs)

	if jsonOutput {
		return output.JSON(report)
	}

	displayDoctorReport(report)
	return nil
}

func checkSystemRequirements(exec executor.CommandExecutor) []Check {
	results := []Check{}

	versionPatterns := map[string]*regexp.Regexp{
		"nginx":   regexp.MustCompile(`nginx/(\d+\.\d+\.\d+)`),
		"certbot": regexp.MustCompile(`(\d+\.\d+\.\d+)`),
		"openssl": regexp.MustCompile(`OpenSSL (\S+)`),
	}

	tools := []struct {
		name        string
		binary      string
		versionArgs []string
	}{
		{"Nginx", "nginx", []string{"-v"}},
		{"Certbot", "certbot", []string{"--version"}},
		{"OpenSSL", "openssl", []string{"version"}},
	}

	for _, tool := range tools {
		if _, err := exec.LookPath(tool.binary); err != nil {
			results = append(results, Check{
				Status:  "error",
				Message: fmt.Sprintf("%s not installed", tool.name),
			})
			continue
		}

		version := "unknown"
		// nginx prints its version on stderr, which Execute folds
		// into the combined output.
		if out, err := exec.Execute(tool.binary, tool.versionArgs...); err == nil || len(out) > 0 {
			if matches := versionPatterns[tool.binary].FindStringSubmatch(string(out)); len(matches) >= 2 {
				version = matches[1]
			}
		}
		results = append(results, Check{
			Status:  "success",
			Message: fmt.Sprintf("%s installed (%s)", tool.name, version),
		})
	}

	return results
}

func checkConfiguration(settings *config.Settings, server *nginx.Server) []Check {
	results := []Check{}

	dirs := []struct {
		name string
		path string
	}{
		{"Sites-available directory", settings.SitesAvailable},
		{"Sites-enabled directory", settings.SitesEnabled},
		{"Webroot directory", settings.Webroot},
	}

	for _, dir := range dirs {
		if info, err := os.Stat(dir.path); err == nil && info.IsDir() {
			results = append(results, Check{
				Status:  "success",
				Message: fmt.Sprintf("%s exists (%s)", dir.name, dir.path),
			})
		} else {
			results = append(results, Check{
				Status:  "error",
				Message: fmt.Sprintf("%s missing (%s)", dir.name, dir.path),
			})
		}
	}

	if path, err := config.RegistryPath(); err == nil {
		if _, err := os.Stat(path); err == nil {
			displayPath := strings.Replace(path, os.Getenv("HOME"), "~", 1)
			results = append(results, Check{
				Status:  "success",
				Message: fmt.Sprintf("Site registry exists (%s)", displayPath),
			})
		} else {
			results = append(results, Check{
				Status:  "warning",
				Message: "Site registry not found (no domains configured yet)",
			})
		}
	}

	if err := server.Test(); err == nil {
		results = append(results, Check{
			Status:  "success",
			Message: "Nginx config syntax OK",
		})
	} else {
		results = append(results, Check{
			Status:  "error",
			Message: "Nginx config syntax error",
		})
	}

	return results
}

func checkDomains(registry *config.Registry, server *nginx.Server, certs *ssl.Client) []DomainStatus {
	statuses := []DomainStatus{}

	for _, site := range registry.List() {
		status := DomainStatus{Domain: site.Domain}
		allOK := true

		if !server.Exists(site.Domain) {
			status.Checks = append(status.Checks, Check{
				Status:  "error",
				Message: "nginx configuration missing",
			})
			allOK = false
		}

		paths := certs.CertPaths(site.Domain)
		if _, err := os.Stat(paths.CertPath); os.IsNotExist(err) {
			status.Checks = append(status.Checks, Check{
				Status:  "error",
				Message: "certificate missing",
			})
			allOK = false
		} else if notAfter, err := certs.Expiry(site.Domain); err == nil {
			remaining := time.Until(notAfter)
			switch {
			case remaining <= 0:
				status.Checks = append(status.Checks, Check{
					Status:  "error",
					Message: "certificate expired",
				})
				allOK = false
			case remaining < 30*24*time.Hour:
				status.Checks = append(status.Checks, Check{
					Status:  "warning",
					Message: fmt.Sprintf("certificate expires in %d days", int(remaining.Hours()/24)),
				})
				allOK = false
			}
		}

		if allOK {
			status.Checks = append(status.Checks, Check{
				Status:  "success",
				Message: "config present, certificate valid",
			})
		}

		statuses = append(statuses, status)
	}

	return statuses
}

func displayDoctorReport(report *DoctorReport) {
	output.Print("Checking system requirements...")
	for _, check := range report.SystemRequirements {
		displayCheck(check)
	}
	output.Print("")

	output.Print("Checking configuration...")
	for _, check := range report.Configuration {
		displayCheck(check)
	}
	output.Print("")

	if len(report.Domains) > 0 {
		output.Print("Checking domains...")
		for _, domain := range report.Domains {
			if len(domain.Checks) == 0 {
				continue
			}
			mainCheck := domain.Checks[len(domain.Checks)-1]
			switch mainCheck.Status {
			case "success":
				output.Success("%s - %s", domain.Domain, mainCheck.Message)
			case "warning":
				output.Warn("%s - %s", domain.Domain, mainCheck.Message)
			case "error":
				output.Error("%s - %s", domain.Domain, mainCheck.Message)
			}
		}
	} else {
		output.Print("No domains configured")
	}
}

func displayCheck(check Check) {
	switch check.Status {
	case "success":
		output.Success("%s", check.Message)
	case "warning":
		output.Warn("%s", check.Message)
	case "error":
		output.Error("%s", check.Message)
	}
}
