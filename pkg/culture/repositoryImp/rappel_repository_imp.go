package repositoryImp

import (
	"time"

	"zbalo/entities"
	"zbalo/pkg/culture/repository"

	"gorm.io/gorm"
)

type rappelRepo struct{ db *gorm.DB }

func NewRappel(db *gorm.DB) repository.RappelRepository { return &rappelRepo{db} }

func (r *rappelRepo) Create(rp *entities.Rappel) error { return r.db.Create(rp).Error }

func (r *rappelRepo) ListPending() ([]entities.Rappel, error) {
	var out []entities.Rappel
	if err := r.db.Where("done = ?", false).Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *rappelRepo) DueWithin(days int) ([]entities.Rappel, error) {
	var out []entities.Rappel
	cut := time.Now().AddDate(0, 0, days).Format("2006-01-02")
	if err := r.db.Where("done = ? AND date <= ?", false, cut).Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *rappelRepo) CountDueWithin(days int) (int64, error) {
	var n int64
	cut := time.Now().AddDate(0, 0, days).Format("2006-01-02")
	err := r.db.Model(&entities.Rappel{}).Where("done = ? AND date <= ?", false, cut).Count(&n).Error
	return n, err
}

func (r *rappelRepo) MarkDone(id uint) error {
	return r.db.Model(&entities.Rappel{}).Where("id = ?", id).Update("done", true).Error
}

func (r *rappelRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Rappel{}, id).Error
}
