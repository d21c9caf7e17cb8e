package services

import (
	"errors"

	"hot100-service/models"
	"hot100-service/repositories"

	"gorm.io/gorm"
)

type ChartService interface {
	CreateEntry(req models.CreateEntryRequest) (*models.HotEntry, error)
	GetEntries(params models.EntryListParams) ([]models.HotEntry, int64, error)
	GetEntry(id uint) (*models.HotEntry, error)
}

type chartService struct {
	entryRepo repositories.HotEntryRepository
}

func NewChartService(entryRepo repositories.HotEntryRepository) ChartService {
	return &chartService{entryRepo: entryRepo}
}

func (s *chartService) CreateEntry(req models.CreateEntryRequest) (*models.HotEntry, error) {
	// Check if the pair already exists; the unique index backs this up
	_, err := s.entryRepo.GetByPair(req.Artist, req.Song)
	if err == nil {
		return nil, errors.New("chart entry already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry := &models.HotEntry{
		Song:   req.Song,
		Artist: req.Artist,
	}

	if err := s.entryRepo.Create(entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *chartService) GetEntries(params models.EntryListParams) ([]models.HotEntry, int64, error) {
	return s.entryRepo.GetList(params)
}

func (s *chartService) GetEntry(id uint) (*models.HotEntry, error) {
	return s.entryRepo.GetByID(id)
}
