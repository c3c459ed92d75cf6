// pkg/ai/client.go

package ai

// Message is one turn of the running conversation.
type Message struct {
	Role    string `json:"role"` // user|assistant
	Content string `json:"content"`
}

type Client interface {
	// Complete sends the system instruction plus the conversation and returns
	// the generated reply text.
	Complete(system string, messages []Message) (string, error)

	// ScanImage sends one base64 image with an instruction and returns the
	// generated text (used by the receipt scanner).
	ScanImage(mediaType, data, prompt string) (string, error)
}
