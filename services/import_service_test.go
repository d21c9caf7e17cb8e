package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeChartFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportPathsInsertsEntries(t *testing.T) {
	repo := setupTestRepo(t)
	service := NewImportService(repo, false, false)

	dir := t.TempDir()
	writeChartFile(t, dir, "week1.json", `{"data": [
		{"song": "Bohemian Rhapsody", "artist": "Queen"},
		{"song": "Rocket Man", "artist": "Elton John"}
	]}`)

	summary, err := service.ImportPaths([]string{dir})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Files)
	assert.Equal(t, 2, summary.Inserted)
	assert.Equal(t, 0, summary.Duplicates)

	entries, err := repo.GetAllOrdered()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestImportPathsSkipsDuplicates(t *testing.T) {
	repo := setupTestRepo(t)
	service := NewImportService(repo, false, false)

	dir := t.TempDir()
	week1 := writeChartFile(t, dir, "week1.json", `{"data": [
		{"song": "Bohemian Rhapsody", "artist": "Queen"},
		{"song": "Rocket Man", "artist": "Elton John"}
	]}`)
	week2 := writeChartFile(t, dir, "week2.json", `{"data": [
		{"song": "Bohemian Rhapsody", "artist": "Queen"},
		{"song": "Tiny Dancer", "artist": "Elton John"}
	]}`)

	summary, err := service.ImportPaths([]string{week1, week2})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Files)
	assert.Equal(t, 3, summary.Inserted)
	assert.Equal(t, 1, summary.Duplicates)

	// Importing the same files again only skips
	summary, err = service.ImportPaths([]string{week1, week2})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Inserted)
	assert.Equal(t, 4, summary.Duplicates)
}

func TestImportPathsRejectsOverlongFields(t *testing.T) {
	repo := setupTestRepo(t)
	service := NewImportService(repo, false, false)

	dir := t.TempDir()
	long := strings.Repeat("x", 81)
	writeChartFile(t, dir, "week1.json", `{"data": [
		{"song": "`+long+`", "artist": "Queen"},
		{"song": "Rocket Man", "artist": "Elton John"}
	]}`)

	summary, err := service.ImportPaths([]string{dir})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Invalid)
	assert.Equal(t, 1, summary.Inserted)
}

func TestImportPathsSkipsMalformedFiles(t *testing.T) {
	repo := setupTestRepo(t)
	service := NewImportService(repo, false, false)

	dir := t.TempDir()
	writeChartFile(t, dir, "broken.json", `{"data": [`)
	writeChartFile(t, dir, "week1.json", `{"data": [{"song": "Rocket Man", "artist": "Elton John"}]}`)

	summary, err := service.ImportPaths([]string{dir})
	require.NoError(t, err)

	// The malformed file is logged and skipped, the rest is imported
	assert.Equal(t, 1, summary.Files)
	assert.Equal(t, 1, summary.Inserted)
}

func TestImportPathsMissingPath(t *testing.T) {
	service := NewImportService(setupTestRepo(t), false, false)

	_, err := service.ImportPaths([]string{"does-not-exist.json"})
	assert.Error(t, err)
}

func TestImportPathsEmptyDir(t *testing.T) {
	service := NewImportService(setupTestRepo(t), false, false)

	_, err := service.ImportPaths([]string{t.TempDir()})
	assert.Error(t, err)
}
