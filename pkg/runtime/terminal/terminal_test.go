package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLI_ProcessDemoSet(t *testing.T) {
	var reports bytes.Buffer
	cli := NewCLI(Options{Output: &reports})

	cli.rootCmd.SetArgs([]string{"process"})
	err := cli.Execute()
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(reports.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.Regexp(t, `^Workout type: (Swimming|Running|SportsWalking); `, line)
	}
}

func TestCLI_Types(t *testing.T) {
	var out bytes.Buffer
	cli := NewCLI(Options{Output: &bytes.Buffer{}})

	cli.rootCmd.SetOut(&out)
	cli.rootCmd.SetArgs([]string{"types"})
	err := cli.Execute()
	assert.NoError(t, err)

	assert.Equal(t, "Supported workout types:\nRUN\nSWM\nWLK\n", out.String())
}
