package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yorozuya-cybersecurity/oracis-agent/internal/catalog"
)

func newChecksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checks",
		Short: "List the CIS checks in the audit catalog",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, c := range catalog.Checks() {
				fmt.Printf("%-5s [%s/%s] %s\n", c.ID, c.Risk, c.FixType, c.Description)
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the agent version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Printf("oracis-agent %s\n", Version)
		},
	}
}
