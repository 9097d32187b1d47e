package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dibbed/sslauto/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	Long: `Print the settings the tool is running with, after applying
environment variables and any .env file in the working directory.

Examples:
  sslauto config
  sslauto config --json`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	settings := deps.LoadSettings()

	if jsonOutput {
		return output.JSON(map[string]interface{}{
			"sites_available":   settings.SitesAvailable,
			"sites_enabled":     settings.SitesEnabled,
			"email_local_part":  settings.EmailLocalPart,
			"webroot":           settings.Webroot,
			"ssl_protocols":     settings.SSLProtocols,
			"ssl_ciphers":       settings.SSLCiphers,
			"http_port":         settings.HTTPPort,
			"https_port":        settings.HTTPSPort,
			"sudo_command":      settings.SudoCommand,
			"apt_get_command":   settings.AptGetCommand,
			"systemctl_command": settings.SystemctlCommand,
			"port_test_timeout": settings.PortTestTimeout.String(),
		})
	}

	headers := []string{"SETTING", "VALUE"}
	rows := [][]string{
		{"Sites available", settings.SitesAvailable},
		{"Sites enabled", settings.SitesEnabled},
		{"Email local part", settings.EmailLocalPart},
		{"Webroot", settings.Webroot},
		{"SSL protocols", settings.SSLProtocols},
		{"SSL ciphers", settings.SSLCiphers},
		{"HTTP port", strconv.Itoa(settings.HTTPPort)},
		{"HTTPS port", strconv.Itoa(settings.HTTPSPort)},
		{"Sudo command", settings.SudoCommand},
		{"apt-get command", settings.AptGetCommand},
		{"systemctl command", settings.SystemctlCommand},
		{"Port test timeout", settings.PortTestTimeout.String()},
	}

	output.Table(headers, rows)
	return nil
}
