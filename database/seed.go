// File: /database/seed.go
package database

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gorm.io/gorm"

	"eventure-api/models"
)

// ImportReferenceData bulk-loads the Location and Category reference tables
// from CSV files. It runs once at startup and is skipped when the tables
// already hold rows, so restarts never duplicate reference data.
func ImportReferenceData(db *gorm.DB, locationsPath, categoriesPath string) error {
	var locationCount int64
	if err := db.Model(&models.Location{}).Count(&locationCount).Error; err != nil {
		return err
	}

	if locationCount == 0 {
		locations, err := LoadLocationsFromCSV(locationsPath)
		if err != nil {
			return fmt.Errorf("failed to load locations: %w", err)
		}
		if err := db.CreateInBatches(locations, 100).Error; err != nil {
			return fmt.Errorf("failed to import locations: %w", err)
		}
	}

	var categoryCount int64
	if err := db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
		return err
	}

	if categoryCount == 0 {
		categories, err := LoadCategoriesFromCSV(categoriesPath)
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		if err := db.CreateInBatches(categories, 100).Error; err != nil {
			return fmt.Errorf("failed to import categories: %w", err)
		}
	}

	return nil
}

// LoadLocationsFromCSV reads location rows from a CSV file with a
// "city,lat,lng" header.
func LoadLocationsFromCSV(path string) ([]models.Location, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	locations := make([]models.Location, 0, len(records))
	for i, record := range records {
		if len(record) < 3 {
			return nil, fmt.Errorf("%s: row %d has %d columns, want 3", path, i+2, len(record))
		}

		lat, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: invalid latitude %q", path, i+2, record[1])
		}
		lng, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: invalid longitude %q", path, i+2, record[2])
		}

		locations = append(locations, models.Location{
			Name:      record[0],
			Latitude:  lat,
			Longitude: lng,
		})
	}

	return locations, nil
}

// LoadCategoriesFromCSV reads category names from a CSV file with a "name"
// header.
func LoadCategoriesFromCSV(path string) ([]models.Category, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0, len(records))
	for i, record := range records {
		if len(record) < 1 || record[0] == "" {
			return nil, fmt.Errorf("%s: row %d has no name", path, i+2)
		}
		categories = append(categories, models.Category{Name: record[0]})
	}

	return categories, nil
}

// readCSV returns all data rows of the file, header stripped.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	return records[1:], nil
}
