package cmd

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"hirelens/internal/domain/models"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, w *zip.Writer, name string, content []byte) {
	t.Helper()
	f, err := w.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
}

func docx(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	writeZip(t, zw, "word/document.xml", []byte(
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`+
			`<w:p><w:r><w:t>`+text+`</w:t></w:r></w:p></w:body></w:document>`))
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// setup writes a config without cache and an archive with two CVs.
func setup(t *testing.T) (configFile, archive string) {
	t.Helper()
	dir := t.TempDir()

	configFile = filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
env: "prod"
analysis:
  role: "Data Analyst"
  algorithm: "kmp"
loader:
  workers: 2
  no_cache: true
`), 0o600))

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	writeZip(t, zw, "cvs/bob.docx", docx(t, "Java and Spring"))
	writeZip(t, zw, "cvs/alice.docx", docx(t, "Python and SQL, plus Excel"))
	require.NoError(t, zw.Close())

	archive = filepath.Join(dir, "cvs.zip")
	require.NoError(t, os.WriteFile(archive, buf.Bytes(), 0o600))
	return configFile, archive
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRolesJSON(t *testing.T) {
	configFile, _ := setup(t)

	out, err := execute(t, "roles", "--config", configFile, "--format", "json")
	require.NoError(t, err)

	var roles map[string][]string
	require.NoError(t, json.Unmarshal([]byte(out), &roles))
	assert.Equal(t, []string{"python", "sql", "power bi", "excel"}, roles["Data Analyst"])
	assert.Contains(t, roles, "Frontend Developer")
}

func TestAnalyzeJSON(t *testing.T) {
	configFile, archive := setup(t)

	out, err := execute(t, "analyze", archive,
		"--config", configFile, "--format", "json", "--keyword", " Scala ")
	require.NoError(t, err)

	var res models.CorpusAnalysis
	require.NoError(t, json.Unmarshal([]byte(out), &res))

	assert.Equal(t, "KMP", res.Algorithm)
	assert.Equal(t, []string{"python", "sql", "power bi", "excel", "scala"}, res.Keywords)
	require.Len(t, res.Files, 2)
	assert.Equal(t, "cvs/alice.docx", res.Files[0].Name)
	assert.InDelta(t, 60.0, res.Files[0].Relevance, 1e-9)
	assert.Equal(t, []string{"power bi", "scala"}, res.Files[0].Missing)
	assert.Equal(t, "cvs/bob.docx", res.Files[1].Name)
	assert.Zero(t, res.Files[1].Relevance)
}

func TestAnalyzeWithoutArchive(t *testing.T) {
	configFile, _ := setup(t)

	_, err := execute(t, "analyze", "--config", configFile)
	require.ErrorIs(t, err, errNoArchive)
}

func TestAnalyzeUnknownAlgorithm(t *testing.T) {
	configFile, archive := setup(t)

	_, err := execute(t, "compare", archive, "--config", configFile, "--algorithm", "bogo")
	require.Error(t, err)
}
