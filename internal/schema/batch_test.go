package schema

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, dir, name string, doc interface{}) string {
	t.Helper()
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestValidateFolder_PartitionsValidAndInvalid(t *testing.T) {
	dir := t.TempDir()

	writeJSON(t, dir, "2026-01-13.json", validDoc())
	writeJSON(t, dir, "2026-01-14.json", validDoc())

	broken := validDoc()
	delete(broken, "date")
	writeJSON(t, dir, "2026-01-15.json", broken)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "2026-01-16.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	res := ValidateFolder(dir)

	require.Len(t, res.Valid, 2)
	assert.Equal(t, "2026-01-13.json", filepath.Base(res.Valid[0]))
	assert.Equal(t, "2026-01-14.json", filepath.Base(res.Valid[1]))

	require.Len(t, res.Invalid, 2)
	assert.Equal(t, "2026-01-15.json", filepath.Base(res.Invalid[0].Path))
	assert.Contains(t, res.Invalid[0].Reason, "date")
	assert.Equal(t, "2026-01-16.json", filepath.Base(res.Invalid[1].Path))
	assert.Contains(t, res.Invalid[1].Reason, "invalid JSON")

	assert.Empty(t, res.Warning)
}

func TestValidateFolder_EmptyFolderWarns(t *testing.T) {
	dir := t.TempDir()
	res := ValidateFolder(dir)
	assert.Empty(t, res.Valid)
	assert.Empty(t, res.Invalid)
	assert.Contains(t, res.Warning, "no JSON log files found")
}

func TestValidateFolder_MissingOrNotAFolder(t *testing.T) {
	res := ValidateFolder(filepath.Join(t.TempDir(), "nope"))
	require.Len(t, res.Invalid, 1)
	assert.Equal(t, "folder does not exist", res.Invalid[0].Reason)

	file := writeJSON(t, t.TempDir(), "a.json", validDoc())
	res = ValidateFolder(file)
	require.Len(t, res.Invalid, 1)
	assert.Equal(t, "path is not a folder", res.Invalid[0].Reason)
}

func TestValidateLogFile(t *testing.T) {
	dir := t.TempDir()

	err := ValidateLogFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	assert.Error(t, ValidateLogFile(dir))

	path := writeJSON(t, dir, "ok.json", validDoc())
	assert.NoError(t, ValidateLogFile(path))
}

func TestRenderBatchReport(t *testing.T) {
	res := BatchResult{
		Valid: []string{"/tmp/logs/2026-01-13.json"},
		Invalid: []InvalidLog{
			{Path: "/tmp/logs/2026-01-14.json", Reason: "missing required top-level field 'date'"},
		},
	}
	out := RenderBatchReport(res)
	assert.Contains(t, out, "VALIDATION REPORT - AI EXECUTION COACH")
	assert.Contains(t, out, "Total files analyzed: 2")
	assert.Contains(t, out, "Valid files: 1")
	assert.Contains(t, out, "Invalid files: 1")
	assert.Contains(t, out, "Success rate: 50.0%")
	assert.Contains(t, out, "✓ 2026-01-13.json")
	assert.Contains(t, out, "✗ 2026-01-14.json")
	assert.Contains(t, out, "missing required top-level field 'date'")
}
