package repositoryImp

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"zbalo/entities"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Culture{}, &entities.Entretien{}, &entities.Rappel{}))
	return db
}

func day(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

func TestRappelDueWithin(t *testing.T) {
	repo := NewRappel(testDB(t))

	require.NoError(t, repo.Create(&entities.Rappel{Date: day(0), Label: "aujourd'hui"}))
	require.NoError(t, repo.Create(&entities.Rappel{Date: day(7), Label: "dans 7 jours"}))
	require.NoError(t, repo.Create(&entities.Rappel{Date: day(8), Label: "dans 8 jours"}))
	require.NoError(t, repo.Create(&entities.Rappel{Date: day(-2), Label: "en retard"}))
	require.NoError(t, repo.Create(&entities.Rappel{Date: day(1), Label: "fait", Done: true}))

	due, err := repo.DueWithin(7)
	require.NoError(t, err)
	labels := make([]string, 0, len(due))
	for _, r := range due {
		labels = append(labels, r.Label)
	}
	// ordered by date, done and beyond-window excluded
	assert.Equal(t, []string{"en retard", "aujourd'hui", "dans 7 jours"}, labels)

	n, err := repo.CountDueWithin(7)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestRappelMarkDone(t *testing.T) {
	repo := NewRappel(testDB(t))
	require.NoError(t, repo.Create(&entities.Rappel{Date: day(0), Label: "arroser"}))

	pending, err := repo.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, repo.MarkDone(pending[0].ID))

	pending, err = repo.ListPending()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestCultureListActive(t *testing.T) {
	repo := New(testDB(t))
	require.NoError(t, repo.Create(&entities.Culture{Plante: "Tomate", Statut: "En cours"}))
	require.NoError(t, repo.Create(&entities.Culture{Plante: "Salade", Statut: "Terminé"}))

	active, err := repo.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Tomate", active[0].Plante)

	n, err := repo.CountActive()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
