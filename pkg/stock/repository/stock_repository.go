package repository

import "zbalo/entities"

type StockRepository interface {
	Create(s *entities.Stock) error
	List() ([]entities.Stock, error)
	// Low returns items under 30% of their declared maximum. Items with a
	// non-positive maximum are never flagged.
	Low() ([]entities.Stock, error)
	CountLow() (int64, error)
	FindByID(id uint) (*entities.Stock, error)
	Update(s *entities.Stock) error
	Delete(id uint) error
}
