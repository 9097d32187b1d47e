package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dibbed/sslauto/internal/output"
)

var forceRemove bool

var removeCmd = &cobra.Command{
	Use:     "remove <domain>",
	Aliases: []string{"rm"},
	Short:   "Remove HTTPS termination for a domain",
	Long: `Remove the nginx site configuration for a domain and reload nginx.

The certificate itself is left in Let's Encrypt storage; only the
serving configuration is removed. Removing a domain that was never
configured succeeds.

Examples:
  sslauto remove example.com
  sslauto rm example.com --force`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&forceRemove, "force", "f", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	domain := args[0]

	if err := requireRoot(); err != nil {
		return err
	}

	if !forceRemove && !jsonOutput {
		output.Print("Remove HTTPS configuration for '%s'? [y/N]: ", domain)
		answer, _ := deps.Stdin.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			output.Info("Removal cancelled")
			return nil
		}
	}

	prov, _, err := loadProvisioner()
	if err != nil {
		return err
	}

	if !jsonOutput {
		output.Info("Removing site configuration for %s...", domain)
	}
	res, err := prov.Remove(domain)
	return emitResult(res, err)
}
