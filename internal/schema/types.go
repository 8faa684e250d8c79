package schema

import (
	"strings"
	"time"
)

// ErrorPrefix marks a check output entry that holds a query error
// instead of fetched rows.
const ErrorPrefix = "Error: "

// Risk is the CIS risk rating of a check.
type Risk string

const (
	RiskHigh   Risk = "High"
	RiskMedium Risk = "Medium"
	RiskLow    Risk = "Low"
)

// FixType classifies the remediation effort.
type FixType string

const (
	FixQuick    FixType = "Quick"
	FixPlanned  FixType = "Planned"
	FixInvolved FixType = "Involved"
)

// Check is one CIS audit rule: a catalog-view query plus its metadata
type Check struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Query       string  `json:"query"`
	Risk        Risk    `json:"risk"`
	FixType     FixType `json:"fix_type"`
	Remediation string  `json:"remediation"`
}

// Result is the outcome of one executed check. Output holds the fetched rows
// as string tuples, or a single "Error: ..." entry when the query failed.
type Result struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Risk        Risk       `json:"risk"`
	FixType     FixType    `json:"fix_type"`
	Remediation string     `json:"remediation"`
	Output      [][]string `json:"output"`
}

// Failed reports whether the check's query errored.
func (r Result) Failed() bool {
	return len(r.Output) == 1 && len(r.Output[0]) == 1 &&
		strings.HasPrefix(r.Output[0][0], ErrorPrefix)
}

// AuditResult groups all check results for one run
type AuditResult struct {
	Target    string    `json:"target"`
	Service   string    `json:"service"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
	Results   []Result  `json:"results"`
}
