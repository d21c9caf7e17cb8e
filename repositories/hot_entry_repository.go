package repositories

import (
	"hot100-service/models"

	"gorm.io/gorm"
)

type HotEntryRepository interface {
	Create(entry *models.HotEntry) error
	GetByID(id uint) (*models.HotEntry, error)
	GetByPair(artist, song string) (*models.HotEntry, error)
	GetList(params models.EntryListParams) ([]models.HotEntry, int64, error)
	GetAllOrdered() ([]models.HotEntry, error)
}

type hotEntryRepository struct {
	db *gorm.DB
}

func NewHotEntryRepository(db *gorm.DB) HotEntryRepository {
	return &hotEntryRepository{db: db}
}

func (r *hotEntryRepository) Create(entry *models.HotEntry) error {
	return r.db.Create(entry).Error
}

func (r *hotEntryRepository) GetByID(id uint) (*models.HotEntry, error) {
	var entry models.HotEntry
	err := r.db.First(&entry, id).Error
	return &entry, err
}

func (r *hotEntryRepository) GetByPair(artist, song string) (*models.HotEntry, error) {
	var entry models.HotEntry
	err := r.db.Where("artist = ? AND song = ?", artist, song).First(&entry).Error
	return &entry, err
}

func (r *hotEntryRepository) GetList(params models.EntryListParams) ([]models.HotEntry, int64, error) {
	var entries []models.HotEntry
	var total int64

	query := r.db.Model(&models.HotEntry{})

	// Add filters; each column has its own index
	if params.Artist != "" {
		query = query.Where("artist = ?", params.Artist)
	}
	if params.Song != "" {
		query = query.Where("song = ?", params.Song)
	}

	// Count total
	query.Count(&total)

	// Add sorting
	sortBy := params.SortBy
	switch sortBy {
	case "id", "artist", "song":
	default:
		sortBy = "id"
	}
	sortOrder := params.SortOrder
	if sortOrder != "desc" {
		sortOrder = "asc"
	}
	query = query.Order(sortBy + " " + sortOrder)

	// Add pagination
	if params.Limit > 0 {
		offset := (params.Page - 1) * params.Limit
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(params.Limit)
	}

	err := query.Find(&entries).Error
	return entries, total, err
}

// GetAllOrdered returns every row ordered by artist then song, the order
// the HTML export lists them in.
func (r *hotEntryRepository) GetAllOrdered() ([]models.HotEntry, error) {
	var entries []models.HotEntry
	err := r.db.Order("artist, song").Find(&entries).Error
	return entries, err
}
