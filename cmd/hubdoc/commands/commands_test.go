package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hubsDir is a standalone module with one hub restricted to "internal".
const hubsDir = "../../../loader/testdata/hubs"

func requireGoCommand(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("runs the go command")
	}
	t.Setenv("GOWORK", "off")
}

func TestSetupGenerateFlags(t *testing.T) {
	fs, flags := SetupGenerateFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.Output)
		assert.Empty(t, flags.Format)
		assert.False(t, flags.Validate)
		assert.False(t, flags.Strict)
		assert.False(t, flags.Quiet)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-o", "out.yaml", "--strict", "-q", "--document", "internal", "./hubs/..."}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "out.yaml", flags.Output)
		assert.True(t, flags.Strict)
		assert.True(t, flags.Quiet)
		assert.Equal(t, "internal", flags.Document)
		assert.Equal(t, "./hubs/...", fs.Arg(0))
	})
}

func TestHandleGenerate_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runGenerate(context.Background(), &stdout, &stderr, []string{"--help"})
	assert.NoError(t, err)
	assert.Contains(t, stderr.String(), "Usage: hubdoc generate")
}

func TestHandleGenerate_InvalidConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runGenerate(context.Background(), &stdout, &stderr, []string{"--naming", "camel"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Naming")
}

func TestHandleGenerate(t *testing.T) {
	requireGoCommand(t)

	var stdout, stderr bytes.Buffer
	err := runGenerate(context.Background(), &stdout, &stderr,
		[]string{"--dir", hubsDir, "--document", "internal", "--title", "Presence API", "./..."})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
	assert.Equal(t, "Presence API", doc["info"].(map[string]any)["title"])
	paths := doc["paths"].(map[string]any)
	assert.Contains(t, paths, "hubs/PresenceHub/Join")
	assert.Contains(t, paths, "hubs/PresenceHub/Leave")

	assert.Contains(t, stderr.String(), "Document: internal")
	assert.Contains(t, stderr.String(), "Paths: 2")
}

func TestHandleGenerate_OutputFile(t *testing.T) {
	requireGoCommand(t)

	out := filepath.Join(t.TempDir(), "openapi.yaml")
	var stdout, stderr bytes.Buffer
	err := runGenerate(context.Background(), &stdout, &stderr,
		[]string{"-q", "--dir", hubsDir, "--document", "internal", "-o", out, "./..."})
	require.NoError(t, err)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "openapi: 3.0.3"), "format follows the extension")
}

func TestHandleValidate_InvalidFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runValidate(context.Background(), &stdout, &stderr, []string{"--format", "invalid"})
	assert.Error(t, err)
}

func TestHandleValidate(t *testing.T) {
	requireGoCommand(t)

	var stdout, stderr bytes.Buffer
	err := runValidate(context.Background(), &stdout, &stderr,
		[]string{"--strict", "--format", "json", "--dir", hubsDir, "--document", "internal", "./..."})
	require.NoError(t, err)

	var out ValidateOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.True(t, out.Valid)
	assert.Equal(t, "internal", out.Document)
	assert.Equal(t, 2, out.Paths)
	assert.Empty(t, out.Findings)
}

func TestHandleValidate_Text(t *testing.T) {
	requireGoCommand(t)

	var stdout, stderr bytes.Buffer
	err := runValidate(context.Background(), &stdout, &stderr,
		[]string{"-q", "--dir", hubsDir, "--document", "internal", "./..."})
	require.NoError(t, err)
	assert.Equal(t, "✓ Validation passed\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestHandleList(t *testing.T) {
	requireGoCommand(t)

	var stdout, stderr bytes.Buffer
	err := runList(context.Background(), &stdout, &stderr,
		[]string{"-q", "--dir", hubsDir, "--document", "internal", "./..."})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	assert.ElementsMatch(t, []string{
		"POST\thubs/PresenceHub/Join\tPresenceHub\tJoin\troom",
		"POST\thubs/PresenceHub/Leave\tPresenceHub\tLeave\t",
	}, lines)
}

func TestHandleList_DocumentFilters(t *testing.T) {
	requireGoCommand(t)

	var stdout, stderr bytes.Buffer
	err := runList(context.Background(), &stdout, &stderr, []string{"-q", "--dir", hubsDir, "./..."})
	require.NoError(t, err)
	assert.Empty(t, stdout.String(), "the hub is restricted to the internal document")
}

func TestHandleList_Hubs(t *testing.T) {
	requireGoCommand(t)

	var stdout, stderr bytes.Buffer
	err := runList(context.Background(), &stdout, &stderr,
		[]string{"--hubs", "--format", "json", "--dir", hubsDir, "./..."})
	require.NoError(t, err)

	var records []map[string]string
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "PresenceHub", records[0]["hub"])
	assert.Equal(t, "hubs/{hubName}", records[0]["path"])
	assert.Equal(t, "Methods", records[0]["discovery"])
	assert.Equal(t, "internal", records[0]["documents"])
	assert.Equal(t, "false", records[0]["hidden"])
}

func TestHandleMCP_Help(t *testing.T) {
	assert.NoError(t, HandleMCP([]string{"-h"}))
}
