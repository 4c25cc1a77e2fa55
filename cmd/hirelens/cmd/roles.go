package cmd

import (
	"hirelens/config"
	"hirelens/internal/services/report"
	"strings"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List job roles and their mandatory keywords",
	Args:  cobra.NoArgs,
	RunE:  runRoles,
}

func init() {
	rolesCmd.Flags().StringVarP(&format, "format", "f", "", "output format: table or json")
}

func runRoles(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	roles := cfg.RoleSet()
	if cfg.Report.Format == config.FormatJSON {
		return report.WriteJSON(cmd.OutOrStdout(), roles)
	}

	for _, name := range roles.Names() {
		printf(cmd, "%s: %s\n", name, strings.Join(roles[name], ", "))
	}
	return nil
}
