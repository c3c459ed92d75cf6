package repositoryImp

import (
	"zbalo/entities"
	"zbalo/pkg/stock/repository"

	"gorm.io/gorm"
)

type venteRepo struct{ db *gorm.DB }

func NewVente(db *gorm.DB) repository.VenteRepository { return &venteRepo{db} }

func (r *venteRepo) Create(v *entities.Vente) error { return r.db.Create(v).Error }

func (r *venteRepo) List() ([]entities.Vente, error) {
	var out []entities.Vente
	if err := r.db.Order("date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *venteRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Vente{}, id).Error
}

func (r *venteRepo) RevenueSince(date string) (float64, error) {
	var total float64
	err := r.db.Model(&entities.Vente{}).
		Where("date >= ?", date).
		Select("COALESCE(SUM(qte * prix_unit), 0)").
		Scan(&total).Error
	return total, err
}
