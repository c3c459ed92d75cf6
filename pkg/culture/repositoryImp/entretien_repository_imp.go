package repositoryImp

import (
	"zbalo/entities"
	"zbalo/pkg/culture/repository"

	"gorm.io/gorm"
)

type entretienRepo struct{ db *gorm.DB }

func NewEntretien(db *gorm.DB) repository.EntretienRepository { return &entretienRepo{db} }

func (r *entretienRepo) Create(e *entities.Entretien) error { return r.db.Create(e).Error }

func (r *entretienRepo) List() ([]entities.Entretien, error) {
	var out []entities.Entretien
	if err := r.db.Order("date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *entretienRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Entretien{}, id).Error
}
