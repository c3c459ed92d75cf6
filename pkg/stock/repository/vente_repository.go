package repository

import "zbalo/entities"

type VenteRepository interface {
	Create(v *entities.Vente) error
	List() ([]entities.Vente, error)
	Delete(id uint) error
	// RevenueSince sums qte*prix_unit for ventes on or after the given date.
	RevenueSince(date string) (float64, error)
}
