package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd_PrintsVersion(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("dev")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "sightline version 1.2.3")
}

func TestSetVersion_EmptyKeepsCurrent(t *testing.T) {
	SetVersion("2.0.0")
	defer SetVersion("dev")

	SetVersion("")

	assert.Equal(t, "2.0.0", version)
}
