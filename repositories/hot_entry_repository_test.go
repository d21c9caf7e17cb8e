package repositories

import (
	"testing"

	"hot100-service/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second connection would see its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.HotEntry{}))
	return db
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	repo := NewHotEntryRepository(setupTestDB(t))

	first := &models.HotEntry{Song: "Bohemian Rhapsody", Artist: "Queen"}
	second := &models.HotEntry{Song: "Don't Stop Me Now", Artist: "Queen"}
	third := &models.HotEntry{Song: "Rocket Man", Artist: "Elton John"}

	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))
	require.NoError(t, repo.Create(third))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
	assert.Equal(t, uint(3), third.ID)
}

func TestCreateRejectsDuplicatePair(t *testing.T) {
	repo := NewHotEntryRepository(setupTestDB(t))

	require.NoError(t, repo.Create(&models.HotEntry{Song: "Bohemian Rhapsody", Artist: "Queen"}))

	err := repo.Create(&models.HotEntry{Song: "Bohemian Rhapsody", Artist: "Queen"})
	assert.Error(t, err)
}

func TestCreateAllowsSameSongDifferentArtist(t *testing.T) {
	repo := NewHotEntryRepository(setupTestDB(t))

	require.NoError(t, repo.Create(&models.HotEntry{Song: "Bohemian Rhapsody", Artist: "Queen"}))
	require.NoError(t, repo.Create(&models.HotEntry{Song: "Bohemian Rhapsody", Artist: "Elton John"}))

	_, total, err := repo.GetList(models.EntryListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestGetListReturnsInsertedRowsIntact(t *testing.T) {
	repo := NewHotEntryRepository(setupTestDB(t))

	require.NoError(t, repo.Create(&models.HotEntry{Song: "Bohemian Rhapsody", Artist: "Queen"}))
	require.NoError(t, repo.Create(&models.HotEntry{Song: "Bohemian Rhapsody", Artist: "Elton John"}))

	entries, total, err := repo.GetList(models.EntryListParams{Page: 1, Limit: 10, SortBy: "id", SortOrder: "asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, entries, 2)

	assert.Equal(t, uint(1), entries[0].ID)
	assert.Equal(t, "Bohemian Rhapsody", entries[0].Song)
	assert.Equal(t, "Queen", entries[0].Artist)
	assert.Equal(t, uint(2), entries[1].ID)
	assert.Equal(t, "Bohemian Rhapsody", entries[1].Song)
	assert.Equal(t, "Elton John", entries[1].Artist)
}

func TestGetListFilters(t *testing.T) {
	repo := NewHotEntryRepository(setupTestDB(t))

	require.NoError(t, repo.Create(&models.HotEntry{Song: "Bohemian Rhapsody", Artist: "Queen"}))
	require.NoError(t, repo.Create(&models.HotEntry{Song: "Don't Stop Me Now", Artist: "Queen"}))
	require.NoError(t, repo.Create(&models.HotEntry{Song: "Rocket Man", Artist: "Elton John"}))

	byArtist, total, err := repo.GetList(models.EntryListParams{Artist: "Queen", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, byArtist, 2)

	bySong, total, err := repo.GetList(models.EntryListParams{Song: "Rocket Man", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, bySong, 1)
	assert.Equal(t, "Elton John", bySong[0].Artist)
}

func TestGetByPair(t *testing.T) {
	repo := NewHotEntryRepository(setupTestDB(t))

	require.NoError(t, repo.Create(&models.HotEntry{Song: "Bohemian Rhapsody", Artist: "Queen"}))

	entry, err := repo.GetByPair("Queen", "Bohemian Rhapsody")
	require.NoError(t, err)
	assert.Equal(t, uint(1), entry.ID)

	_, err = repo.GetByPair("Queen", "Under Pressure")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetAllOrdered(t *testing.T) {
	repo := NewHotEntryRepository(setupTestDB(t))

	require.NoError(t, repo.Create(&models.HotEntry{Song: "Rocket Man", Artist: "Elton John"}))
	require.NoError(t, repo.Create(&models.HotEntry{Song: "Don't Stop Me Now", Artist: "Queen"}))
	require.NoError(t, repo.Create(&models.HotEntry{Song: "Bohemian Rhapsody", Artist: "Queen"}))

	entries, err := repo.GetAllOrdered()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Elton John", entries[0].Artist)
	assert.Equal(t, "Bohemian Rhapsody", entries[1].Song)
	assert.Equal(t, "Don't Stop Me Now", entries[2].Song)
}
