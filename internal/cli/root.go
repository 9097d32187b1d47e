package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dibbed/sslauto/internal/logger"
)

var (
	jsonOutput bool
	verbose    bool
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sslauto",
	Short: "Automated SSL certificate management for nginx",
	Long: `sslauto provisions HTTPS termination for a domain forwarding to a
local port, using nginx for the reverse proxy and Let's Encrypt for
certificates.

It writes the nginx site configuration, obtains the certificate via
certbot's webroot challenge, and can later check expiry, renew, or
remove the serving configuration again.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
}
