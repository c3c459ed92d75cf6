package service

import (
	"errors"

	"zbalo/pkg/ai"
	"zbalo/pkg/assistant/types"
)

var ErrNoMessages = errors.New("messages manquants")

type AssistantService interface {
	// Chat runs the full pipeline: briefing, completion, extraction, dispatch.
	// Returns the reply text and one outcome per executed action.
	Chat(messages []ai.Message) (string, []types.Outcome, error)
}
