package runner_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yorozuya-cybersecurity/oracis-agent/internal/runner"
	"github.com/yorozuya-cybersecurity/oracis-agent/internal/schema"
)

// fakeExecutor returns canned rows or errors keyed by query text and
// records the execution order.
type fakeExecutor struct {
	rows  map[string][][]string
	errs  map[string]error
	calls []string
}

func (f *fakeExecutor) Execute(_ context.Context, query string) ([][]string, error) {
	f.calls = append(f.calls, query)
	if err := f.errs[query]; err != nil {
		return nil, err
	}
	return f.rows[query], nil
}

func TestRunProducesOneResultPerCheckInOrder(t *testing.T) {
	checks := []schema.Check{
		{ID: "1.1", Query: "q1", Risk: schema.RiskHigh},
		{ID: "2.1", Query: "q2", Risk: schema.RiskMedium},
		{ID: "3.1", Query: "q3", Risk: schema.RiskLow},
	}
	exec := &fakeExecutor{rows: map[string][][]string{
		"q1": {{"DB,EXTENDED"}},
		"q2": {},
		"q3": {{"SCOTT", "OPEN"}, {"HR", "LOCKED"}},
	}}

	results := runner.Run(context.Background(), exec, checks)

	require.Len(t, results, len(checks))
	for i, check := range checks {
		assert.Equal(t, check.ID, results[i].ID)
	}
	assert.Equal(t, []string{"q1", "q2", "q3"}, exec.calls)
}

func TestRunKeepsRowsAndOrderOnSuccess(t *testing.T) {
	rows := [][]string{{"SCOTT", "OPEN"}, {"HR", "LOCKED"}}
	exec := &fakeExecutor{rows: map[string][][]string{"q": rows}}

	results := runner.Run(context.Background(), exec, []schema.Check{{ID: "5.1", Query: "q"}})

	require.Len(t, results, 1)
	assert.Equal(t, rows, results[0].Output)
	assert.False(t, results[0].Failed())
}

func TestRunConvertsQueryErrorAndContinues(t *testing.T) {
	checks := []schema.Check{
		{ID: "4.1", Query: "bad"},
		{ID: "5.1", Query: "good"},
	}
	exec := &fakeExecutor{
		rows: map[string][][]string{"good": {{"OUTLN", "LOCKED"}}},
		errs: map[string]error{"bad": errors.New("ORA-00942: table or view does not exist")},
	}

	results := runner.Run(context.Background(), exec, checks)

	require.Len(t, results, 2)
	assert.Equal(t, [][]string{{"Error: ORA-00942: table or view does not exist"}}, results[0].Output)
	assert.True(t, results[0].Failed())

	// the failing check must not abort the run
	assert.Equal(t, []string{"bad", "good"}, exec.calls)
	assert.Equal(t, [][]string{{"OUTLN", "LOCKED"}}, results[1].Output)
}

func TestRunCopiesCheckMetadata(t *testing.T) {
	check := schema.Check{
		ID:          "1.1",
		Description: "Ensure auditing is enabled",
		Query:       "q",
		Risk:        schema.RiskHigh,
		FixType:     schema.FixQuick,
		Remediation: "Set 'audit_trail=DB,EXTENDED' in init.ora or spfile",
	}
	exec := &fakeExecutor{rows: map[string][][]string{"q": {{"DB"}}}}

	results := runner.Run(context.Background(), exec, []schema.Check{check})

	require.Len(t, results, 1)
	got := results[0]
	assert.Equal(t, check.ID, got.ID)
	assert.Equal(t, check.Description, got.Description)
	assert.Equal(t, check.Risk, got.Risk)
	assert.Equal(t, check.FixType, got.FixType)
	assert.Equal(t, check.Remediation, got.Remediation)
}

func TestRunEmptyCatalog(t *testing.T) {
	results := runner.Run(context.Background(), &fakeExecutor{}, nil)
	assert.Empty(t, results)
}
