package services

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"

	"hot100-service/models"
	"hot100-service/repositories"

	"gopkg.in/go-playground/validator.v9"
	"gorm.io/gorm"
)

// ImportService loads scraped chart JSON files into the hot100 table.
// Entries whose (artist, song) pair is already stored are skipped, so the
// same week's file can be imported twice without error.
type ImportService interface {
	ImportPaths(paths []string) (*models.ImportSummary, error)
}

type importService struct {
	entryRepo repositories.HotEntryRepository
	validate  *validator.Validate
	verbose   bool
	debug     bool
}

func NewImportService(entryRepo repositories.HotEntryRepository, verbose, debug bool) ImportService {
	return &importService{
		entryRepo: entryRepo,
		validate:  validator.New(),
		verbose:   verbose || debug,
		debug:     debug,
	}
}

// ImportPaths expands directory arguments to their *.json files and imports
// each file. A file that cannot be read or parsed is logged and skipped; it
// does not abort the run.
func (s *importService) ImportPaths(paths []string) (*models.ImportSummary, error) {
	files, err := s.expandPaths(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("no JSON files to import")
	}

	summary := &models.ImportSummary{}
	for _, file := range files {
		if s.verbose {
			log.Printf("Processing file: %s", file)
		}
		if err := s.importFile(file, summary); err != nil {
			log.Printf("Error processing file %s: %v", file, err)
			continue
		}
		summary.Files++
	}

	return summary, nil
}

func (s *importService) expandPaths(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			matches, err := filepath.Glob(filepath.Join(path, "*.json"))
			if err != nil {
				return nil, err
			}
			files = append(files, matches...)
		} else {
			files = append(files, path)
		}
	}
	return files, nil
}

func (s *importService) importFile(path string, summary *models.ImportSummary) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var chart models.ChartFile
	if err := json.Unmarshal(content, &chart); err != nil {
		return err
	}

	for _, entry := range chart.Data {
		if err := s.validate.Struct(entry); err != nil {
			log.Printf("Invalid entry %s - %s: %v", entry.Song, entry.Artist, err)
			summary.Invalid++
			continue
		}

		// Duplicate pairs are skipped, everything else is inserted
		_, err := s.entryRepo.GetByPair(entry.Artist, entry.Song)
		if err == nil {
			if s.debug {
				log.Printf("Duplicate entry skipped: %s - %s", entry.Song, entry.Artist)
			}
			summary.Duplicates++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := s.entryRepo.Create(&models.HotEntry{Song: entry.Song, Artist: entry.Artist}); err != nil {
			log.Printf("Error inserting record: %v", err)
			summary.Failed++
			continue
		}
		if s.debug {
			log.Printf("Inserted: %s - %s", entry.Song, entry.Artist)
		}
		summary.Inserted++
	}

	return nil
}
