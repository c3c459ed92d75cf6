package repository

type SerreRepository interface {
	Names() ([]string, error)
	// Ensure inserts the serre if the name is not already present.
	Ensure(nom string) error
	DeleteByName(nom string) error
}
