package repositoryImp

import (
	"zbalo/entities"
	"zbalo/pkg/compta/repository"

	"gorm.io/gorm"
)

type depenseRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DepenseRepository { return &depenseRepo{db} }

func (r *depenseRepo) Create(d *entities.Depense) error { return r.db.Create(d).Error }

func (r *depenseRepo) List() ([]entities.Depense, error) {
	var out []entities.Depense
	if err := r.db.Order("date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *depenseRepo) FindByID(id uint) (*entities.Depense, error) {
	var d entities.Depense
	if err := r.db.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *depenseRepo) Update(d *entities.Depense) error { return r.db.Save(d).Error }

func (r *depenseRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Depense{}, id).Error
}
