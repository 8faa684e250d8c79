package oracle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectRejectsNonNumericPort(t *testing.T) {
	_, err := Connect(context.Background(), Descriptor{
		Host:    "db01",
		Port:    "not-a-port",
		Service: "ORCL",
		User:    "auditor",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
}

func TestStringify(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil is blank", nil, ""},
		{"string passes through", "OPEN", "OPEN"},
		{"bytes pass through", []byte("DB,EXTENDED"), "DB,EXTENDED"},
		{"time uses report format", time.Date(2025, 9, 11, 13, 17, 22, 0, time.UTC), "2025-09-11 13:17:22"},
		{"number formats plainly", int64(1017), "1017"},
		{"float formats plainly", 2.5, "2.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stringify(tc.in))
		})
	}
}
