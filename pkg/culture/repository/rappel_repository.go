package repository

import "zbalo/entities"

type RappelRepository interface {
	Create(r *entities.Rappel) error
	ListPending() ([]entities.Rappel, error)
	// DueWithin returns pending rappels whose date falls within the next n days.
	DueWithin(days int) ([]entities.Rappel, error)
	CountDueWithin(days int) (int64, error)
	MarkDone(id uint) error
	Delete(id uint) error
}
