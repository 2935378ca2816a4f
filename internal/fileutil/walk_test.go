package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("<root/>"), 0o644))
	}
}

func TestFindXMLFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.xml", "b.xml", "notes.txt", "sub/c.xml", "sub/d.tei")

	files, err := FindXMLFiles(dir, []string{"xml", "tei"}, 0, nil)
	require.NoError(t, err)
	assert.Len(t, files, 4)
}

func TestFindXMLFiles_ExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.xml", "b.tei", "c.XML")

	files, err := FindXMLFiles(dir, []string{"xml"}, 0, nil)
	require.NoError(t, err)
	// Extension comparison is exact: "XML" does not match "xml".
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "a.xml"), files[0])
}

func TestFindXMLFiles_DepthLimit(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "top.xml", "one/mid.xml", "one/two/deep.xml")

	files, err := FindXMLFiles(dir, []string{"xml"}, 1, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "top.xml"), files[0])

	files, err = FindXMLFiles(dir, []string{"xml"}, 2, nil)
	require.NoError(t, err)
	assert.Len(t, files, 2)

	files, err = FindXMLFiles(dir, []string{"xml"}, 0, nil)
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestFindXMLFiles_EmptyResultIsError(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "readme.md")

	_, err := FindXMLFiles(dir, []string{"xml"}, 0, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no XML files found")
}

func TestValidateDirectory(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, ValidateDirectory(dir))

	assert.Error(t, ValidateDirectory(filepath.Join(dir, "missing")))

	file := filepath.Join(dir, "file.xml")
	require.NoError(t, os.WriteFile(file, []byte("<a/>"), 0o644))
	err := ValidateDirectory(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
