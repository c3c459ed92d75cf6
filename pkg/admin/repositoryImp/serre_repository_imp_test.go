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
	require.NoError(t, db.AutoMigrate(&entities.Serre{}, &entities.Setting{}, &entities.Fiche{}))
	return db
}

func TestSerreEnsureIdempotent(t *testing.T) {
	repo := NewSerre(testDB(t))

	require.NoError(t, repo.Ensure("Serre 6"))
	require.NoError(t, repo.Ensure("Serre 6"))
	require.NoError(t, repo.Ensure("Serre 1"))

	names, err := repo.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"Serre 1", "Serre 6"}, names)
}

func TestSettingPutUpserts(t *testing.T) {
	repo := NewSetting(testDB(t))

	require.NoError(t, repo.Put("unites_vente", `["kg"]`))
	require.NoError(t, repo.Put("unites_vente", `["kg","botte"]`))

	all, err := repo.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, `["kg","botte"]`, all[0].Value)
}

func TestFicheUpsertByNom(t *testing.T) {
	repo := New(testDB(t))

	require.NoError(t, repo.Upsert(&entities.Fiche{Nom: "Tomate", Categorie: "Fruit"}))
	require.NoError(t, repo.Upsert(&entities.Fiche{Nom: "Tomate", Categorie: "Fruit", TempOpt: 22}))

	n, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	fiches, err := repo.List()
	require.NoError(t, err)
	require.Len(t, fiches, 1)
	assert.Equal(t, 22.0, fiches[0].TempOpt)
}
