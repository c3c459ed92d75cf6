package repository

import "zbalo/entities"

type DepenseRepository interface {
	Create(d *entities.Depense) error
	List() ([]entities.Depense, error)
	FindByID(id uint) (*entities.Depense, error)
	Update(d *entities.Depense) error
	Delete(id uint) error
}
