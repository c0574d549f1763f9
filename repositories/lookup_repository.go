// File: /repositories/lookup_repository.go
package repositories

import (
	"gorm.io/gorm"

	"eventure-api/models"
)

// LookupRepository queries the Location and Category reference tables.
// Lookups are by name, exact match as stored.
type LookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) *LookupRepository {
	return &LookupRepository{db: db}
}

func (r *LookupRepository) FindLocationByName(name string) (*models.Location, error) {
	var location models.Location
	if err := r.db.First(&location, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *LookupRepository) FindCategoryByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *LookupRepository) CountLocations() (int64, error) {
	var count int64
	err := r.db.Model(&models.Location{}).Count(&count).Error
	return count, err
}

func (r *LookupRepository) CountCategories() (int64, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Count(&count).Error
	return count, err
}
