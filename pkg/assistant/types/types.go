package types

// Kind values mirror the action catalogue advertised in the briefing. The two
// sets must stay in lockstep: a kind missing from the catalogue is never
// emitted, a kind missing here is silently ignored by the dispatcher.
type Kind string

const (
	AddCulture    Kind = "ADD_CULTURE"
	DeleteCulture Kind = "DELETE_CULTURE"
	AddSerre      Kind = "ADD_SERRE"
	AddRappel     Kind = "ADD_RAPPEL"
	AddStock      Kind = "ADD_STOCK"
	AddEntretien  Kind = "ADD_ENTRETIEN"
	Unrecognized  Kind = ""
)

// Action is one parsed instruction extracted from a model reply. The fields
// are the union across kinds; the dispatcher reads only those its kind uses.
type Action struct {
	Action      string  `json:"action"`
	ID          uint    `json:"id"`
	Plante      string  `json:"plante"`
	Variete     string  `json:"variete"`
	Type        string  `json:"type"`
	ModeSemis   string  `json:"modeSemis"`
	Emplacement string  `json:"emplacement"`
	Date        string  `json:"date"`
	Nom         string  `json:"nom"`
	Label       string  `json:"label"`
	Qte         float64 `json:"qte"`
	Unite       string  `json:"unite"`
	Zone        string  `json:"zone"`
	Duree       float64 `json:"duree"`
	Description string  `json:"description"`
}

func (a Action) Kind() Kind {
	switch Kind(a.Action) {
	case AddCulture, DeleteCulture, AddSerre, AddRappel, AddStock, AddEntretien:
		return Kind(a.Action)
	}
	return Unrecognized
}

// Outcome reports one executed action back to the caller: either a message or
// an error, never both.
type Outcome struct {
	Action  string `json:"action"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
