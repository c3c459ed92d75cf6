package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zbalo/pkg/assistant/types"
)

func TestExtractActionsNoSentinel(t *testing.T) {
	for _, reply := range []string{
		"",
		"Bonjour, tout va bien dans la serre.",
		"Un seul # ne suffit pas {\"action\":\"ADD_SERRE\"}",
		"###pas un objet###",
		"### {\"action\":\"ADD_SERRE\"} ###", // leading space, not '{'
	} {
		assert.Empty(t, extractActions(reply), "reply: %q", reply)
	}
}

func TestExtractActionsSingle(t *testing.T) {
	reply := `Ok, je l'ajoute. ###{"action":"ADD_SERRE","nom":"Serre 6"}### Voilà !`
	got := extractActions(reply)
	require.Len(t, got, 1)
	assert.Equal(t, types.AddSerre, got[0].Kind())
	assert.Equal(t, "Serre 6", got[0].Nom)
}

func TestExtractActionsMalformedInterleaved(t *testing.T) {
	reply := `Je fais tout ça.
###{"action":"ADD_SERRE","nom":"Serre 6"}###
###{"action":"ADD_RAPPEL","label":###
###{pas du json}###
###{"action":"ADD_STOCK","nom":"Graines basilic","qte":50,"unite":"graine"}###
###{"action":"ADD_RAPPEL","label":"Arroser","date":"2026-09-02"}###
C'est fait.`
	got := extractActions(reply)
	require.Len(t, got, 3)
	assert.Equal(t, "ADD_SERRE", got[0].Action)
	assert.Equal(t, "ADD_STOCK", got[1].Action)
	assert.Equal(t, 50.0, got[1].Qte)
	assert.Equal(t, "ADD_RAPPEL", got[2].Action)
}

func TestExtractActionsMissingDiscriminator(t *testing.T) {
	got := extractActions(`###{"nom":"Serre 7"}###`)
	require.Len(t, got, 1)
	assert.Equal(t, types.Unrecognized, got[0].Kind())
}

func TestActionKindUnknown(t *testing.T) {
	a := types.Action{Action: "DROP_TABLES"}
	assert.Equal(t, types.Unrecognized, a.Kind())
}
