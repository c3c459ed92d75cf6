package repositoryImp

import (
	"zbalo/entities"
	"zbalo/pkg/admin/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingRepo struct{ db *gorm.DB }

func NewSetting(db *gorm.DB) repository.SettingRepository { return &settingRepo{db} }

func (r *settingRepo) All() ([]entities.Setting, error) {
	var out []entities.Setting
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *settingRepo) Put(key, value string) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entities.Setting{Key: key, Value: value}).Error
}
