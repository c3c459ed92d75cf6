package repositoryImp

import (
	"zbalo/entities"
	"zbalo/pkg/stock/repository"

	"gorm.io/gorm"
)

const lowRatio = 0.3

type stockRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.StockRepository { return &stockRepo{db} }

func (r *stockRepo) Create(s *entities.Stock) error { return r.db.Create(s).Error }

func (r *stockRepo) List() ([]entities.Stock, error) {
	var out []entities.Stock
	if err := r.db.Order("nom ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *stockRepo) Low() ([]entities.Stock, error) {
	var out []entities.Stock
	if err := r.db.Where("qte_max > 0 AND qte / qte_max < ?", lowRatio).Order("nom ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *stockRepo) CountLow() (int64, error) {
	var n int64
	err := r.db.Model(&entities.Stock{}).Where("qte_max > 0 AND qte / qte_max < ?", lowRatio).Count(&n).Error
	return n, err
}

func (r *stockRepo) FindByID(id uint) (*entities.Stock, error) {
	var s entities.Stock
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *stockRepo) Update(s *entities.Stock) error { return r.db.Save(s).Error }

func (r *stockRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Stock{}, id).Error
}
