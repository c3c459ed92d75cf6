package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"zbalo/pkg/ai"
	"zbalo/pkg/assistant/service"
)

type AssistantCtrl struct{ svc service.AssistantService }

func New(svc service.AssistantService) *AssistantCtrl { return &AssistantCtrl{svc} }

func (h *AssistantCtrl) Chat(c echo.Context) error {
	var body struct {
		Messages []ai.Message `json:"messages"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}

	reply, outcomes, err := h.svc.Chat(body.Messages)
	if errors.Is(err, service.ErrNoMessages) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Messages manquants"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{"reply": reply, "actions": outcomes})
}
