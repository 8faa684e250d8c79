package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yorozuya-cybersecurity/oracis-agent/internal/schema"
)

// SaveResult writes the run into a JSON file next to the HTML report, as
// <outputDir>/oracle_cis_results_<timestamp>.json. The report command can
// re-render HTML/PDF from this file later.
func SaveResult(res schema.AuditResult, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	file := filepath.Join(outputDir, "oracle_cis_results_"+res.Timestamp.Format("20060102_150405")+".json")
	fh, err := os.Create(file)
	if err != nil {
		return "", fmt.Errorf("failed to create results file: %w", err)
	}
	defer fh.Close()

	enc := json.NewEncoder(fh)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return "", fmt.Errorf("failed to encode results: %w", err)
	}

	return file, nil
}
