package services

import (
	"bytes"
	"strings"
	"testing"

	"hot100-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHTML(t *testing.T) {
	repo := setupTestRepo(t)
	service := NewExportService(repo)

	require.NoError(t, repo.Create(&models.HotEntry{Song: "Don't Stop Me Now", Artist: "Queen"}))
	require.NoError(t, repo.Create(&models.HotEntry{Song: "September", Artist: "Earth, Wind & Fire"}))

	var buf bytes.Buffer
	require.NoError(t, service.WriteHTML(&buf))
	html := buf.String()

	assert.Contains(t, html, "<title>Billboard Hot 100 Search Links</title>")
	assert.Contains(t, html, "<th>Apple Music</th>")
	assert.Contains(t, html, "<th>Spotify</th>")

	// Special characters are escaped
	assert.Contains(t, html, "Earth, Wind &amp; Fire")
	assert.Contains(t, html, "Don&#39;t Stop Me Now")

	// Site-restricted search links per row
	assert.Contains(t, html, "q=Queen+Don%27t+Stop+Me+Now+site%3Aopen.spotify.com")
	assert.Contains(t, html, "site%3Amusic.apple.com")

	// Rows come out ordered by artist then song
	assert.Less(t, strings.Index(html, "Earth, Wind"), strings.Index(html, "<td>Queen</td>"))
}

func TestWriteHTMLEmptyChart(t *testing.T) {
	service := NewExportService(setupTestRepo(t))

	var buf bytes.Buffer
	err := service.WriteHTML(&buf)
	require.Error(t, err)
	assert.Equal(t, "no chart entries to export", err.Error())
}
