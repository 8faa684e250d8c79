package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version = "0.1.0"
	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "oracis",
		Short: "Oracle CIS benchmark audit agent",
		Long:  "Yorozuya Oracle CIS audit agent: run read-only CIS checks against an Oracle database and generate HTML/PDF reports.",
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("output", "o", "./cis_html_reports", "Output directory for reports and results")
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))

	// Environment variable support (ORACIS_OUTPUT, etc.)
	viper.SetEnvPrefix("ORACIS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Subcommands
	rootCmd.AddCommand(newAuditCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newChecksCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
