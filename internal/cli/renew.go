package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dibbed/sslauto/internal/output"
)

var renewAll bool

var renewCmd = &cobra.Command{
	Use:   "renew [domain]",
	Short: "Renew certificates and reload nginx",
	Long: `Renew the Let's Encrypt certificate for a domain, or all
certificates due for renewal with --all, then reload nginx so it picks
up the new certificate.

Examples:
  sslauto renew example.com
  sslauto renew --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRenew,
}

func init() {
	renewCmd.Flags().BoolVar(&renewAll, "all", false, "Renew every certificate due for renewal")

	rootCmd.AddCommand(renewCmd)
}

func runRenew(cmd *cobra.Command, args []string) error {
	if renewAll == (len(args) == 1) {
		return fmt.Errorf("specify either a domain or --all")
	}

	if err := requireRoot(); err != nil {
		return err
	}

	prov, _, err := loadProvisioner()
	if err != nil {
		return err
	}

	if renewAll {
		if !jsonOutput {
			output.Info("Renewing all certificates...")
		}
		res, err := prov.RenewAll()
		return emitResult(res, err)
	}

	if !jsonOutput {
		output.Info("Renewing certificate for %s...", args[0])
	}
	res, err := prov.Renew(args[0])
	return emitResult(res, err)
}
