package cli

import (
	"github.com/spf13/cobra"

	"github.com/dibbed/sslauto/internal/output"
)

var checkCmd = &cobra.Command{
	Use:   "check <domain>",
	Short: "Check certificate expiry for a domain",
	Long: `Report the certificate expiry date for a domain and whether the
certificate is currently active.

Reads the certificate from Let's Encrypt storage with openssl, so it
works without root privileges on most systems.

Examples:
  sslauto check example.com
  sslauto check example.com --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	domain := args[0]

	prov, _, err := loadProvisioner()
	if err != nil {
		return err
	}

	res, err := prov.CheckExpiry(domain)

	if jsonOutput {
		if jsonErr := output.JSON(res); jsonErr != nil {
			return jsonErr
		}
		return err
	}

	if err != nil {
		output.Error("%s", res.Error)
		return err
	}

	if res.IsActive {
		output.Success("Certificate for %s is active", res.Domain)
	} else {
		output.Error("Certificate for %s has expired", res.Domain)
	}
	output.Print("  Expires: %s", res.NotAfter.Format("2006-01-02 15:04:05 MST"))
	return nil
}
