package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zbalo/entities"
	"zbalo/pkg/assistant/types"
)

func TestBuildContextSnapshot(t *testing.T) {
	svc, db := newTestSvc(t, &stubLLM{})
	require.NoError(t, db.Create(&entities.Serre{Nom: "Serre 1"}).Error)
	require.NoError(t, db.Create(&entities.Serre{Nom: "Serre 2"}).Error)
	require.NoError(t, db.Create(&entities.Culture{
		Plante: "Tomate", Variete: "Cœur de bœuf", Emplacement: "Serre 1", Statut: "En cours",
	}).Error)
	// healthy stock, not flagged
	require.NoError(t, db.Create(&entities.Stock{Nom: "Terreau", Qte: 50, QteMax: 100}).Error)

	briefing := svc.buildContext()
	assert.Contains(t, briefing, "Serres : Serre 1, Serre 2")
	assert.Contains(t, briefing, "Cultures en cours (1) : Tomate (Cœur de bœuf) en Serre 1")
	assert.Contains(t, briefing, "Stocks bas : aucun")
	assert.Contains(t, briefing, "Rappels urgents (7j) : aucun")

	now := time.Now()
	assert.Contains(t, briefing, "Date : "+now.Format("02/01/2006"))
	assert.Contains(t, briefing, "Saison : "+saisons[now.Month()-1])
}

func TestBuildContextEmptyFarm(t *testing.T) {
	svc, _ := newTestSvc(t, &stubLLM{})
	briefing := svc.buildContext()
	assert.Contains(t, briefing, "Serres : aucune")
	assert.Contains(t, briefing, "Cultures en cours (0) : aucune")
}

func TestBuildContextVarieteOptional(t *testing.T) {
	svc, db := newTestSvc(t, &stubLLM{})
	require.NoError(t, db.Create(&entities.Culture{
		Plante: "Courgette", Emplacement: "Plein champ", Statut: "En cours",
	}).Error)
	require.NoError(t, db.Create(&entities.Culture{
		Plante: "Salade", Emplacement: "Serre 3", Statut: "Terminé",
	}).Error)

	briefing := svc.buildContext()
	assert.Contains(t, briefing, "Cultures en cours (1) : Courgette en Plein champ")
	assert.NotContains(t, briefing, "Salade")
}

func TestBuildContextLowStockAndRappels(t *testing.T) {
	svc, db := newTestSvc(t, &stubLLM{})
	today := time.Now().Format("2006-01-02")
	nextMonth := time.Now().AddDate(0, 1, 0).Format("2006-01-02")

	require.NoError(t, db.Create(&entities.Stock{Nom: "Graines carotte", Qte: 2, QteMax: 10}).Error)
	require.NoError(t, db.Create(&entities.Stock{Nom: "Paille", Qte: 0, QteMax: 0}).Error) // max 0: never low
	require.NoError(t, db.Create(&entities.Rappel{Date: today, Label: "Arroser serre 2"}).Error)
	require.NoError(t, db.Create(&entities.Rappel{Date: today, Label: "Déjà fait", Done: true}).Error)
	require.NoError(t, db.Create(&entities.Rappel{Date: nextMonth, Label: "Trop loin"}).Error)

	briefing := svc.buildContext()
	assert.Contains(t, briefing, "Stocks bas : Graines carotte")
	assert.NotContains(t, briefing, "Paille")
	assert.Contains(t, briefing, "Rappels urgents (7j) : Arroser serre 2")
	assert.NotContains(t, briefing, "Déjà fait")
	assert.NotContains(t, briefing, "Trop loin")
}

// The worked examples in the catalogue double as format examples for the
// model, so every one of them must survive extraction, and every extracted
// kind must be one the dispatcher knows.
func TestBuildContextCatalogueMatchesDispatcher(t *testing.T) {
	svc, _ := newTestSvc(t, &stubLLM{})
	examples := extractActions(svc.buildContext())
	require.Len(t, examples, 6)
	kinds := map[types.Kind]bool{}
	for _, a := range examples {
		require.NotEqual(t, types.Unrecognized, a.Kind(), "catalogue advertises %q", a.Action)
		kinds[a.Kind()] = true
	}
	assert.Len(t, kinds, 6, "each supported kind has exactly one example")
}
