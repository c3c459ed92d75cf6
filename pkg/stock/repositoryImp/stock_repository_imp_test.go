package repositoryImp

import (
	"testing"

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
	require.NoError(t, db.AutoMigrate(&entities.Stock{}, &entities.Vente{}))
	return db
}

func TestStockLowThreshold(t *testing.T) {
	db := testDB(t)
	repo := New(db)

	cases := []struct {
		nom  string
		qte  float64
		max  float64
		low  bool
	}{
		{"vide max zero", 0, 0, false}, // max <= 0 is never flagged
		{"plein max zero", 500, 0, false},
		{"sous le seuil", 2, 10, true},
		{"pile au seuil", 3, 10, false}, // 0.3 exactly is not low
		{"juste en dessous", 2.9, 10, true},
		{"bien rempli", 9, 10, false},
	}
	for _, tc := range cases {
		require.NoError(t, repo.Create(&entities.Stock{Nom: tc.nom, Qte: tc.qte, QteMax: tc.max}))
	}

	low, err := repo.Low()
	require.NoError(t, err)
	got := map[string]bool{}
	for _, s := range low {
		got[s.Nom] = true
	}
	for _, tc := range cases {
		assert.Equal(t, tc.low, got[tc.nom], tc.nom)
	}

	n, err := repo.CountLow()
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestVenteRevenueSince(t *testing.T) {
	db := testDB(t)
	repo := NewVente(db)

	require.NoError(t, repo.Create(&entities.Vente{Date: "2026-08-02", Produit: "Tomate", Qte: 10, PrixUnit: 3}))
	require.NoError(t, repo.Create(&entities.Vente{Date: "2026-08-15", Produit: "Basilic", Qte: 4, PrixUnit: 2.5}))
	require.NoError(t, repo.Create(&entities.Vente{Date: "2026-07-30", Produit: "Salade", Qte: 100, PrixUnit: 1}))

	total, err := repo.RevenueSince("2026-08-01")
	require.NoError(t, err)
	assert.InDelta(t, 40.0, total, 0.001)

	none, err := repo.RevenueSince("2027-01-01")
	require.NoError(t, err)
	assert.Zero(t, none)
}
