// Package runner executes the check catalog over a database session.
package runner

import (
	"context"

	"github.com/yorozuya-cybersecurity/oracis-agent/internal/schema"
)

// Executor runs one query and returns its rows. *oracle.Session satisfies it.
type Executor interface {
	Execute(ctx context.Context, query string) ([][]string, error)
}

// Run executes every check in catalog order and returns one Result per
// check, in the same order. A failing query never aborts the run: its
// result degrades to a single "Error: ..." output entry and execution
// continues with the next check.
func Run(ctx context.Context, exec Executor, checks []schema.Check) []schema.Result {
	results := make([]schema.Result, 0, len(checks))
	for _, check := range checks {
		output, err := exec.Execute(ctx, check.Query)
		if err != nil {
			output = [][]string{{schema.ErrorPrefix + err.Error()}}
		}
		results = append(results, schema.Result{
			ID:          check.ID,
			Description: check.Description,
			Risk:        check.Risk,
			FixType:     check.FixType,
			Remediation: check.Remediation,
			Output:      output,
		})
	}
	return results
}
