package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yorozuya-cybersecurity/oracis-agent/internal/catalog"
	"github.com/yorozuya-cybersecurity/oracis-agent/internal/oracle"
	reportpkg "github.com/yorozuya-cybersecurity/oracis-agent/internal/report"
	"github.com/yorozuya-cybersecurity/oracis-agent/internal/runner"
	"github.com/yorozuya-cybersecurity/oracis-agent/internal/schema"
	"github.com/yorozuya-cybersecurity/oracis-agent/pkg/utils"
)

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Run the CIS check catalog against an Oracle database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			desc, err := collectCredentials(cmd.InOrStdin())
			if err != nil {
				return err
			}

			fmt.Println("🧪 Connecting to Oracle...")
			session, err := oracle.Connect(cmd.Context(), desc)
			if err != nil {
				return fmt.Errorf("❌ connection failed: %w", err)
			}
			defer session.Close()
			fmt.Println("✅ Connected.")

			results := runner.Run(cmd.Context(), session, catalog.Checks())

			res := schema.AuditResult{
				Target:    desc.Host + ":" + desc.Port,
				Service:   desc.Service,
				User:      desc.User,
				Timestamp: time.Now(),
				Results:   results,
			}

			outDir := viper.GetString("output")
			file, err := utils.SaveResult(res, outDir)
			if err != nil {
				return err
			}
			fmt.Printf("📦 Results saved to %s\n", file)

			htmlPath, err := reportpkg.GenerateHTML(res, outDir)
			if err != nil {
				return err
			}
			fmt.Printf("📄 Report saved to: %s\n", htmlPath)

			if viper.GetBool("audit.pdf") {
				pdfPath, err := reportpkg.GeneratePDF(cmd.Context(), htmlPath)
				if err != nil {
					fmt.Printf("⚠️  PDF generation failed: %v\n", err)
				} else {
					fmt.Printf("📄 PDF report:  %s\n", pdfPath)
				}
			}

			errored := 0
			for _, r := range results {
				if r.Failed() {
					errored++
				}
			}
			fmt.Printf("   Checks run: %d (%d with errors)\n", len(results), errored)
			return nil
		},
	}

	cmd.Flags().String("host", "", "Oracle host")
	cmd.Flags().String("port", "", "Oracle listener port (default 1521)")
	cmd.Flags().String("service", "", "Service name or SID")
	cmd.Flags().String("user", "", "Read-only username")
	cmd.Flags().Bool("pdf", false, "Also export the report as PDF (needs Chrome/Chromium)")
	_ = viper.BindPFlag("audit.host", cmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("audit.port", cmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("audit.service", cmd.Flags().Lookup("service"))
	_ = viper.BindPFlag("audit.user", cmd.Flags().Lookup("user"))
	_ = viper.BindPFlag("audit.pdf", cmd.Flags().Lookup("pdf"))

	return cmd
}
