package cli

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dibbed/sslauto/internal/output"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List managed domains",
	Long: `List the domains this tool has provisioned, with their upstream
ports and redirect settings.

Examples:
  sslauto list
  sslauto ls --json`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

type siteListItem struct {
	Domain   string `json:"domain"`
	Port     int    `json:"port"`
	Redirect bool   `json:"redirect"`
	Created  string `json:"created"`
}

func runList(cmd *cobra.Command, args []string) error {
	registry, err := deps.LoadRegistry()
	if err != nil {
		return err
	}

	items := make([]siteListItem, 0)
	for _, site := range registry.List() {
		items = append(items, siteListItem{
			Domain:   site.Domain,
			Port:     site.Port,
			Redirect: site.Redirect,
			Created:  site.CreatedAt.Format("2006-01-02"),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Domain < items[j].Domain
	})

	if len(items) == 0 {
		if jsonOutput {
			return output.JSON([]siteListItem{})
		}
		output.Info("No domains configured")
		return nil
	}

	if jsonOutput {
		return output.JSON(items)
	}

	headers := []string{"DOMAIN", "PORT", "REDIRECT", "CREATED"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		redirect := "no"
		if item.Redirect {
			redirect = "yes"
		}
		rows = append(rows, []string{
			item.Domain,
			strconv.Itoa(item.Port),
			redirect,
			item.Created,
		})
	}

	output.Table(headers, rows)
	return nil
}
