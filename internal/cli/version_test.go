package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	tests := []struct {
		name                  string
		version, commit, date string
		want                  string
	}{
		{"default", "dev", "none", "unknown", "saanjha dev (commit: none, built: unknown)\n"},
		{"release", "1.0.0", "abc1234", "2025-01-01", "saanjha 1.0.0 (commit: abc1234, built: 2025-01-01)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersionInfo(tt.version, tt.commit, tt.date)
			t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

			buf := new(bytes.Buffer)
			versionCmd.SetOut(buf)
			versionCmd.Run(versionCmd, nil)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}
