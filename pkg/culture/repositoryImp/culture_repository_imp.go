package repositoryImp

import (
	"zbalo/entities"
	"zbalo/pkg/culture/repository"

	"gorm.io/gorm"
)

type cultureRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CultureRepository { return &cultureRepo{db} }

func (r *cultureRepo) Create(c *entities.Culture) error { return r.db.Create(c).Error }

func (r *cultureRepo) List() ([]entities.Culture, error) {
	var out []entities.Culture
	if err := r.db.Order("date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cultureRepo) ListActive() ([]entities.Culture, error) {
	var out []entities.Culture
	if err := r.db.Where("statut = ?", "En cours").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cultureRepo) CountActive() (int64, error) {
	var n int64
	err := r.db.Model(&entities.Culture{}).Where("statut = ?", "En cours").Count(&n).Error
	return n, err
}

func (r *cultureRepo) FindByID(id uint) (*entities.Culture, error) {
	var c entities.Culture
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cultureRepo) Update(c *entities.Culture) error { return r.db.Save(c).Error }

func (r *cultureRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Culture{}, id).Error
}
