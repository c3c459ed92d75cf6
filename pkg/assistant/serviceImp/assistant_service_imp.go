package serviceImp

import (
	"zbalo/pkg/ai"
	adminrepo "zbalo/pkg/admin/repository"
	"zbalo/pkg/assistant/service"
	"zbalo/pkg/assistant/types"
	culturerepo "zbalo/pkg/culture/repository"
	stockrepo "zbalo/pkg/stock/repository"
)

type Svc struct {
	llm        ai.Client
	cultures   culturerepo.CultureRepository
	entretiens culturerepo.EntretienRepository
	rappels    culturerepo.RappelRepository
	stocks     stockrepo.StockRepository
	serres     adminrepo.SerreRepository
}

func New(
	llm ai.Client,
	cultures culturerepo.CultureRepository,
	entretiens culturerepo.EntretienRepository,
	rappels culturerepo.RappelRepository,
	stocks stockrepo.StockRepository,
	serres adminrepo.SerreRepository,
) *Svc {
	return &Svc{llm: llm, cultures: cultures, entretiens: entretiens,
		rappels: rappels, stocks: stocks, serres: serres}
}

func (s *Svc) Chat(messages []ai.Message) (string, []types.Outcome, error) {
	if len(messages) == 0 {
		return "", nil, service.ErrNoMessages
	}

	reply, err := s.llm.Complete(s.buildContext(), messages)
	if err != nil {
		return "", nil, err
	}

	// Dispatch sequentially, in extraction order. One failed action must not
	// stop the others; there is no cross-action transaction.
	outcomes := []types.Outcome{}
	for _, a := range extractActions(reply) {
		if o := s.dispatch(a); o != nil {
			outcomes = append(outcomes, *o)
		}
	}
	return reply, outcomes, nil
}
