package report

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yorozuya-cybersecurity/oracis-agent/internal/schema"
)

//go:embed templates/report.html
var reportHTMLTemplate string

// ---------- Public API ----------

// LoadAuditResult reads a persisted run back from its results JSON file.
func LoadAuditResult(path string) (schema.AuditResult, error) {
	var res schema.AuditResult
	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("read results file: %w", err)
	}
	if err := json.Unmarshal(data, &res); err != nil {
		return res, fmt.Errorf("parse results file: %w", err)
	}
	return res, nil
}

// GenerateHTML renders the audit run into
// <outDir>/oracle_cis_report_<YYYYMMDD_HHMMSS>.html. The document is built
// fully in memory and written in one call; outDir is created if absent.
func GenerateHTML(res schema.AuditResult, outDir string) (string, error) {
	var buf bytes.Buffer
	if err := Render(res, &buf); err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("create out dir: %w", err)
	}

	htmlPath := filepath.Join(outDir, "oracle_cis_report_"+res.Timestamp.Format("20060102_150405")+".html")
	if err := os.WriteFile(htmlPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return htmlPath, nil
}

// Render writes the HTML document for one run to w. All view data derives
// from res, so rendering the same run twice is byte-identical. Row content
// passes through html/template escaping before it reaches the document.
func Render(res schema.AuditResult, w io.Writer) error {
	tmpl, err := template.New("report").Parse(reportHTMLTemplate)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}
	if err := tmpl.Execute(w, buildViewModel(res)); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	return nil
}

// ---------- View Model & helpers ----------

type viewModel struct {
	Target      string
	Service     string
	User        string
	Date        string
	TotalChecks int
	ErrorChecks int
	HighCount   int
	MediumCount int
	LowCount    int
	Rows        []resultRow
	Generator   string
	Year        int
}

type resultRow struct {
	RiskClass   string // table-row CSS class, the risk string verbatim
	ID          string
	Description string
	Risk        string
	FixType     string
	Remediation string
	Output      string // one line per fetched row tuple
}

func buildViewModel(res schema.AuditResult) viewModel {
	vm := viewModel{
		Target:      res.Target,
		Service:     res.Service,
		User:        res.User,
		Date:        res.Timestamp.Format("2006-01-02 15:04:05"),
		TotalChecks: len(res.Results),
		Generator:   "oracis-agent",
		Year:        res.Timestamp.Year(),
	}

	for _, r := range res.Results {
		if r.Failed() {
			vm.ErrorChecks++
		}
		switch r.Risk {
		case schema.RiskHigh:
			vm.HighCount++
		case schema.RiskMedium:
			vm.MediumCount++
		case schema.RiskLow:
			vm.LowCount++
		}
		vm.Rows = append(vm.Rows, resultRow{
			RiskClass:   string(r.Risk),
			ID:          r.ID,
			Description: r.Description,
			Risk:        string(r.Risk),
			FixType:     string(r.FixType),
			Remediation: r.Remediation,
			Output:      flattenOutput(r.Output),
		})
	}
	return vm
}

// flattenOutput renders the fetched rows for the report's <pre> cell:
// column values joined with ", ", one row per line.
func flattenOutput(output [][]string) string {
	lines := make([]string, 0, len(output))
	for _, tuple := range output {
		lines = append(lines, strings.Join(tuple, ", "))
	}
	return strings.Join(lines, "\n")
}
