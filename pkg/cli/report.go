package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	reportpkg "github.com/yorozuya-cybersecurity/oracis-agent/internal/report"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "report",
		Short:   "Re-generate HTML/PDF report from a saved results file",
		Example: "oracis report --from ./cis_html_reports/oracle_cis_results_20250911_131722.json --format html,pdf",
		RunE:    runReport,
	}

	cmd.Flags().String("from", "", "Results JSON file written by a previous audit run")
	cmd.Flags().String("format", "html", "Output formats: html,pdf")

	_ = viper.BindPFlag("report.from", cmd.Flags().Lookup("from"))
	_ = viper.BindPFlag("report.format", cmd.Flags().Lookup("format"))
	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	from := viper.GetString("report.from")
	if from == "" {
		return errors.New("please provide --from pointing to a results JSON file")
	}

	formats := strings.Split(viper.GetString("report.format"), ",")
	for i := range formats {
		formats[i] = strings.TrimSpace(strings.ToLower(formats[i]))
	}

	// Load the saved run and render HTML
	res, err := reportpkg.LoadAuditResult(from)
	if err != nil {
		return err
	}
	htmlPath, err := reportpkg.GenerateHTML(res, viper.GetString("output"))
	if err != nil {
		return err
	}
	fmt.Printf("📝 HTML report: %s\n", htmlPath)

	// Optional PDF (chromedp-based)
	if contains(formats, "pdf") {
		pdfPath, err := reportpkg.GeneratePDF(cmd.Context(), htmlPath)
		if err != nil {
			fmt.Printf("⚠️  PDF generation failed: %v\n", err)
		} else {
			fmt.Printf("📄 PDF report:  %s\n", pdfPath)
		}
	}

	return nil
}

func contains(arr []string, v string) bool {
	for _, x := range arr {
		if x == v {
			return true
		}
	}
	return false
}
