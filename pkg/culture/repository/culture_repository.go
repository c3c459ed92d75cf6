package repository

import "zbalo/entities"

type CultureRepository interface {
	Create(c *entities.Culture) error
	List() ([]entities.Culture, error)
	ListActive() ([]entities.Culture, error)
	CountActive() (int64, error)
	FindByID(id uint) (*entities.Culture, error)
	Update(c *entities.Culture) error
	Delete(id uint) error
}
