package controllerImp

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zbalo/pkg/ai"
	"zbalo/pkg/assistant/service"
	"zbalo/pkg/assistant/types"
)

type stubSvc struct {
	reply    string
	outcomes []types.Outcome
	err      error
	calls    int
}

func (s *stubSvc) Chat(messages []ai.Message) (string, []types.Outcome, error) {
	s.calls++
	if len(messages) == 0 {
		return "", nil, service.ErrNoMessages
	}
	return s.reply, s.outcomes, s.err
}

func doChat(t *testing.T, svc service.AssistantService, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, New(svc).Chat(e.NewContext(req, rec)))
	return rec
}

func TestChatHandlerSuccess(t *testing.T) {
	svc := &stubSvc{
		reply:    "C'est fait !",
		outcomes: []types.Outcome{{Action: "ADD_SERRE", Message: "Serre 6 ajoutée"}},
	}
	rec := doChat(t, svc, `{"messages":[{"role":"user","content":"ajoute la serre 6"}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Reply   string          `json:"reply"`
		Actions []types.Outcome `json:"actions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "C'est fait !", out.Reply)
	require.Len(t, out.Actions, 1)
	assert.Equal(t, "Serre 6 ajoutée", out.Actions[0].Message)
}

func TestChatHandlerEmptyMessages(t *testing.T) {
	rec := doChat(t, &stubSvc{}, `{"messages":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Messages manquants")
}

func TestChatHandlerUpstreamError(t *testing.T) {
	rec := doChat(t, &stubSvc{err: errors.New("overloaded")}, `{"messages":[{"role":"user","content":"salut"}]}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "overloaded")
}
