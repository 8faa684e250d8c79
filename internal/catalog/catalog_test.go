package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yorozuya-cybersecurity/oracis-agent/internal/catalog"
	"github.com/yorozuya-cybersecurity/oracis-agent/internal/schema"
)

func TestChecksAreComplete(t *testing.T) {
	checks := catalog.Checks()
	require.NotEmpty(t, checks)

	seen := map[string]bool{}
	for _, c := range checks {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Description)
		assert.NotEmpty(t, c.Query)
		assert.NotEmpty(t, c.Remediation)
		assert.Contains(t, []schema.Risk{schema.RiskHigh, schema.RiskMedium, schema.RiskLow}, c.Risk)
		assert.Contains(t, []schema.FixType{schema.FixQuick, schema.FixPlanned, schema.FixInvolved}, c.FixType)

		assert.False(t, seen[c.ID], "duplicate check id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestChecksAreReadOnly(t *testing.T) {
	for _, c := range catalog.Checks() {
		assert.True(t, strings.HasPrefix(strings.ToUpper(c.Query), "SELECT "), "check %s query is not a SELECT", c.ID)
	}
}

func TestChecksKeepBaselineCatalog(t *testing.T) {
	byID := map[string]schema.Check{}
	for _, c := range catalog.Checks() {
		byID[c.ID] = c
	}

	audit, ok := byID["1.1"]
	require.True(t, ok)
	assert.Equal(t, "SELECT value FROM v$parameter WHERE name = 'audit_trail'", audit.Query)
	assert.Equal(t, schema.RiskHigh, audit.Risk)
	assert.Equal(t, schema.FixQuick, audit.FixType)

	for _, id := range []string{"1.1", "2.1", "3.1", "4.1", "5.1"} {
		assert.Contains(t, byID, id)
	}
}

func TestChecksReturnsFreshCopies(t *testing.T) {
	first := catalog.Checks()
	first[0].Query = "DROP TABLE dba_users"

	second := catalog.Checks()
	assert.Equal(t, "SELECT value FROM v$parameter WHERE name = 'audit_trail'", second[0].Query)
}
