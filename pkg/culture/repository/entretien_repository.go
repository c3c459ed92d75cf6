package repository

import "zbalo/entities"

type EntretienRepository interface {
	Create(e *entities.Entretien) error
	List() ([]entities.Entretien, error)
	Delete(id uint) error
}
