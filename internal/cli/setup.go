package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dibbed/sslauto/internal/output"
)

var (
	noRedirect bool
	testPort   bool
)

var setupCmd = &cobra.Command{
	Use:   "setup <domain> <port>",
	Short: "Set up HTTPS termination for a domain",
	Long: `Provision HTTPS termination for a domain forwarding to a local port.

Writes an nginx site configuration, obtains a Let's Encrypt certificate
via the webroot challenge, and activates the final TLS configuration.
Re-running setup for the same domain overwrites the configuration and
re-issues the certificate.

Examples:
  sslauto setup example.com 3000
  sslauto setup example.com 3000 --no-redirect --test-port`,
	Args: cobra.ExactArgs(2),
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVar(&noRedirect, "no-redirect", false, "Don't redirect HTTP to HTTPS")
	setupCmd.Flags().BoolVar(&testPort, "test-port", false, "Test port connectivity before setup")

	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	domain := args[0]

	port, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid port %q: must be an integer", args[1])
	}

	if err := requireRoot(); err != nil {
		return err
	}

	prov, _, err := loadProvisioner()
	if err != nil {
		return err
	}

	if !jsonOutput {
		output.Info("Setting up HTTPS for %s, forwarding to port %d...", domain, port)
	}
	res, err := prov.Setup(domain, port, !noRedirect, testPort)

	ret := emitResult(res, err)
	if err == nil && !jsonOutput {
		output.Print("  Configuration: %s", res.ConfPath)
	}
	return ret
}
