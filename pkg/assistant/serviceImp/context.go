package serviceImp

import (
	"fmt"
	"strings"
	"time"
)

var mois = [12]string{"Janvier", "Février", "Mars", "Avril", "Mai", "Juin", "Juillet",
	"Août", "Septembre", "Octobre", "Novembre", "Décembre"}

var saisons = [12]string{"Hiver", "Hiver", "Printemps", "Printemps", "Printemps", "Été",
	"Été", "Été", "Automne", "Automne", "Automne", "Hiver"}

// buildContext renders the briefing sent as the system instruction: farm
// snapshot, companion-planting rules and the action catalogue. Each worked
// example doubles as the wire-format example for the model, so it must stay
// valid JSON inside the ### sentinels.
func (s *Svc) buildContext() string {
	cultures, _ := s.cultures.ListActive()
	stocksLow, _ := s.stocks.Low()
	serres, _ := s.serres.Names()
	rappels, _ := s.rappels.DueWithin(7)

	lines := make([]string, 0, len(cultures))
	for _, c := range cultures {
		l := c.Plante
		if c.Variete != "" {
			l += " (" + c.Variete + ")"
		}
		l += " en " + c.Emplacement
		lines = append(lines, l)
	}
	culturesStr := joinOr(lines, " | ", "aucune")

	noms := make([]string, 0, len(stocksLow))
	for _, st := range stocksLow {
		noms = append(noms, st.Nom)
	}
	stocksStr := joinOr(noms, ", ", "aucun")

	labels := make([]string, 0, len(rappels))
	for _, r := range rappels {
		labels = append(labels, r.Label)
	}
	rappelsStr := joinOr(labels, ", ", "aucun")

	now := time.Now()
	today := now.Format("2006-01-02")

	return fmt.Sprintf(`Tu es l'assistant maraîchage bio de ZBALO Pro, exploitation en Bretagne/Pays de Loire.
Tu tutoies l'utilisateur. Tu es expert en maraîchage bio, permaculture, associations de plantes.
Tu réponds en français, de façon concise et pratique.

═══ EXPLOITATION ═══
Date : %s — %s %d
Saison : %s
Serres : %s
Cultures en cours (%d) : %s
Stocks bas : %s
Rappels urgents (7j) : %s

═══ ASSOCIATIONS BIO ═══
✅ Tomate ↔ Basilic, Carotte, Persil, Œillet d'Inde
❌ Tomate ✗ Fenouil, Chou, Pomme de terre
✅ Courgette ↔ Haricot, Capucine, Maïs
✅ Carotte ↔ Poireau, Oignon, Salade
✅ Aubergine ↔ Basilic, Poivron, Haricot

═══ ACTIONS DISPONIBLES ═══
Si l'utilisateur demande d'agir sur l'appli, inclus un JSON d'action entouré de ###.
Format : ###{"action":"NOM", ...paramètres...}###

Actions :
- Créer culture : ###{"action":"ADD_CULTURE","plante":"Tomate","variete":"Cœur de bœuf","type":"semis","modeSemis":"godet","emplacement":"Serre 1","date":"%s"}###
- Supprimer culture : ###{"action":"DELETE_CULTURE","id":123}###
- Ajouter serre : ###{"action":"ADD_SERRE","nom":"Serre 6"}###
- Créer rappel : ###{"action":"ADD_RAPPEL","label":"Arroser serre 2","date":"%s"}###
- Ajouter stock : ###{"action":"ADD_STOCK","nom":"Graines basilic","qte":50,"unite":"graine"}###
- Ajouter entretien : ###{"action":"ADD_ENTRETIEN","type":"Arrosage","zone":"Serre 1","duree":1,"description":"Arrosage hebdo"}###

Annonce toujours ce que tu fais avant le JSON.
`,
		now.Format("02/01/2006"), mois[now.Month()-1], now.Year(),
		saisons[now.Month()-1],
		joinOr(serres, ", ", "aucune"),
		len(cultures), culturesStr,
		stocksStr,
		rappelsStr,
		today, today,
	)
}

func joinOr(parts []string, sep, empty string) string {
	if len(parts) == 0 {
		return empty
	}
	return strings.Join(parts, sep)
}
