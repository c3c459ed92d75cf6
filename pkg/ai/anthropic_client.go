// pkg/ai/anthropic_client.go

package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type anthropicClient struct {
	endpoint string
	key      string
	model    string
}

func NewAnthropic(endpoint, key, model string) Client {
	return &anthropicClient{endpoint: endpoint, key: key, model: model}
}

type msgResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *anthropicClient) Complete(system string, messages []Message) (string, error) {
	reqBody := map[string]any{
		"model":      c.model,
		"max_tokens": 1000,
		"system":     system,
		"messages":   messages,
	}
	return c.post(reqBody)
}

func (c *anthropicClient) ScanImage(mediaType, data, prompt string) (string, error) {
	reqBody := map[string]any{
		"model":      c.model,
		"max_tokens": 800,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{
						"type": "image",
						"source": map[string]any{
							"type":       "base64",
							"media_type": mediaType,
							"data":       data,
						},
					},
					{"type": "text", "text": prompt},
				},
			},
		},
	}
	return c.post(reqBody)
}

func (c *anthropicClient) post(reqBody map[string]any) (string, error) {
	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 60 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/messages", bytes.NewReader(b))
	req.Header.Set("x-api-key", c.key)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out msgResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Error != nil {
		return "", fmt.Errorf("%s: %s", out.Error.Type, out.Error.Message)
	}
	for _, blk := range out.Content {
		if blk.Type == "text" && strings.TrimSpace(blk.Text) != "" {
			return blk.Text, nil
		}
	}
	return "", fmt.Errorf("empty completion (status %d)", resp.StatusCode)
}
