package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revlift-labs/irlight/internal/cli"
)

const lowFixture = `
dialect: low
arch: { name: amd64, bits: 64 }
blocks:
  - addr: 0x1000
    statements:
      - { stmt: mark, addr: 0x1000, delta: 0 }
      - stmt: tmp
        temp: 0
        src: { expr: const, value: 40 }
      - stmt: reg
        offset: 16
        src:
          expr: binop
          op: Add64
          args:
            - { expr: tmp, temp: 0 }
            - { expr: const, value: 2 }
`

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEvalText(t *testing.T) {
	path := writeFixture(t, lowFixture)

	out, err := runCLI(t, "eval", path)
	require.NoError(t, err)
	assert.Contains(t, out, "block 0x1000")
	assert.Contains(t, out, "register")
	assert.Contains(t, out, "0x2a<64>")
}

func TestEvalJSON(t *testing.T) {
	path := writeFixture(t, lowFixture)

	out, err := runCLI(t, "eval", path, "--output", "json")
	require.NoError(t, err)

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, float64(0x1000), results[0]["BlockAddr"])
	regs, ok := results[0]["Registers"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "0x2a<64>", regs["16"])
}

func TestVerbosePrintsConfigFile(t *testing.T) {
	fixture := writeFixture(t, lowFixture)
	cfgPath := filepath.Join(t.TempDir(), "irlight.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: text\n"), 0o644))

	out, err := runCLI(t, "eval", fixture, "--config", cfgPath, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Using config file: "+cfgPath)

	// Without --config and no irlight.yaml in the working directory
	// there is no file to report.
	out, err = runCLI(t, "eval", fixture, "--verbose")
	require.NoError(t, err)
	assert.NotContains(t, out, "Using config file:")
}

func TestEvalMissingFixture(t *testing.T) {
	_, err := runCLI(t, "eval", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestInspect(t *testing.T) {
	path := writeFixture(t, lowFixture)

	out, err := runCLI(t, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "dialect: low")
	assert.Contains(t, out, "*lowir.TempAssign")
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "irlight")
}
