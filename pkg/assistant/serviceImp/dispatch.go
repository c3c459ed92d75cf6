package serviceImp

import (
	"time"

	"zbalo/entities"
	"zbalo/pkg/assistant/types"
)

const (
	assistantNote = "🤖 Créé par assistant IA"
	assistantIcon = "🤖"
	defaultQteMax = 100
)

// dispatch runs one action against the store and reports the outcome. An
// unrecognized kind produces no outcome; a store error becomes a failure
// outcome so the rest of the batch still runs.
func (s *Svc) dispatch(a types.Action) *types.Outcome {
	today := time.Now().Format("2006-01-02")

	switch a.Kind() {
	case types.AddCulture:
		cu := &entities.Culture{
			Plante:      a.Plante,
			Variete:     a.Variete,
			Type:        orDefault(a.Type, "semis"),
			ModeSemis:   orDefault(a.ModeSemis, "godet"),
			Statut:      "En cours",
			Date:        orDefault(a.Date, today),
			Emplacement: a.Emplacement,
			Notes:       assistantNote,
		}
		if err := s.cultures.Create(cu); err != nil {
			return failure(a.Action, err)
		}
		return success(a.Action, a.Plante+" ajoutée")

	case types.DeleteCulture:
		if err := s.cultures.Delete(a.ID); err != nil {
			return failure(a.Action, err)
		}
		return success(a.Action, "Culture supprimée")

	case types.AddSerre:
		if err := s.serres.Ensure(a.Nom); err != nil {
			return failure(a.Action, err)
		}
		return success(a.Action, a.Nom+" ajoutée")

	case types.AddRappel:
		r := &entities.Rappel{Date: orDefault(a.Date, today), Label: a.Label, Icon: assistantIcon}
		if err := s.rappels.Create(r); err != nil {
			return failure(a.Action, err)
		}
		return success(a.Action, "Rappel créé")

	case types.AddStock:
		st := &entities.Stock{Nom: a.Nom, Qte: a.Qte, QteMax: defaultQteMax, Unite: orDefault(a.Unite, "kg")}
		if err := s.stocks.Create(st); err != nil {
			return failure(a.Action, err)
		}
		return success(a.Action, a.Nom+" ajouté")

	case types.AddEntretien:
		e := &entities.Entretien{
			Date:        orDefault(a.Date, today),
			Type:        a.Type,
			Zone:        a.Zone,
			Duree:       a.Duree,
			Description: a.Description,
		}
		if err := s.entretiens.Create(e); err != nil {
			return failure(a.Action, err)
		}
		return success(a.Action, "Entretien enregistré")
	}

	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func success(action, msg string) *types.Outcome {
	return &types.Outcome{Action: action, Message: msg}
}

func failure(action string, err error) *types.Outcome {
	return &types.Outcome{Action: action, Error: err.Error()}
}
