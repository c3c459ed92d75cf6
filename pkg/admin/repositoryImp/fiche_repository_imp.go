package repositoryImp

import (
	"zbalo/entities"
	"zbalo/pkg/admin/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ficheRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FicheRepository { return &ficheRepo{db} }

func (r *ficheRepo) Upsert(f *entities.Fiche) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "nom"}},
		UpdateAll: true,
	}).Create(f).Error
}

func (r *ficheRepo) List() ([]entities.Fiche, error) {
	var out []entities.Fiche
	if err := r.db.Order("nom ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ficheRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&entities.Fiche{}).Count(&n).Error
	return n, err
}

func (r *ficheRepo) FindByID(id uint) (*entities.Fiche, error) {
	var f entities.Fiche
	if err := r.db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *ficheRepo) Update(f *entities.Fiche) error { return r.db.Save(f).Error }

func (r *ficheRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Fiche{}, id).Error
}
