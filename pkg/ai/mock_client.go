// pkg/ai/mock_client.go

package ai

type mockClient struct{}

// NewMock returns a client used when no API key is configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Complete(system string, messages []Message) (string, error) {
	return "Assistant indisponible (mode démo) : configure ANTHROPIC_API_KEY pour activer l'IA.", nil
}

func (m *mockClient) ScanImage(mediaType, data, prompt string) (string, error) {
	return `{"date":null,"fournisseur":null,"categorie":"Autre","total":0,"articles":[],"notes":"scan indisponible en mode démo"}`, nil
}
