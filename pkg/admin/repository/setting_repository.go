package repository

import "zbalo/entities"

type SettingRepository interface {
	All() ([]entities.Setting, error)
	Put(key, value string) error
}
