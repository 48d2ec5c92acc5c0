package data

import (
	"strings"

	"gorm.io/gorm"
)

type doctorsDAO struct {
	db *gorm.DB
}

func newDoctorsDAO(db *gorm.DB) *doctorsDAO {
	return &doctorsDAO{db}
}

func (d *doctorsDAO) GetOne(id int) (Doctor, error) {
	doctor := Doctor{}
	err := d.db.
		Preload("Review").
		Preload("ModalitySettings").
		Preload("ModalitySettings.Windows").
		Find(&doctor, id).Error
	return doctor, err
}

func (d *doctorsDAO) GetAll() ([]Doctor, error) {
	doctors := make([]Doctor, 0)
	err := d.db.
		Preload("Review").
		Preload("ModalitySettings").
		Preload("ModalitySettings.Windows").
		Find(&doctors).Error

	return doctors, err
}

// Search filters the directory by name substring and/or category.
func (d *doctorsDAO) Search(query, category string) ([]Doctor, error) {
	doctors := make([]Doctor, 0)

	tx := d.db.Preload("Review")
	if query != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	if category != "" {
		tx = tx.Where("category = ?", category)
	}

	err := tx.Order("name").Find(&doctors).Error
	return doctors, err
}
