package repository

import "zbalo/entities"

type FicheRepository interface {
	// Upsert replaces any fiche with the same nom.
	Upsert(f *entities.Fiche) error
	List() ([]entities.Fiche, error)
	Count() (int64, error)
	FindByID(id uint) (*entities.Fiche, error)
	Update(f *entities.Fiche) error
	Delete(id uint) error
}
