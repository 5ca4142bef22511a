package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const maxLoggedBody = 4 << 10

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

// GeminiREST calls the generateContent endpoint with an API key.
// The key travels in a header so it never shows up in URLs or error strings.
type GeminiREST struct {
	url    string
	apiKey string
	client *http.Client
}

// NewGeminiREST takes the already expanded endpoint URL.
// client may be nil, in which case a client with transport defaults is used.
func NewGeminiREST(url, apiKey string, client *http.Client) *GeminiREST {
	if client == nil {
		client = &http.Client{}
	}
	return &GeminiREST{url: url, apiKey: apiKey, client: client}
}

func (g *GeminiREST) Close() error {
	g.client.CloseIdleConnections()
	return nil
}

func (g *GeminiREST) Generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: truncate(raw)}
	}
	if !json.Valid(raw) {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       truncate(raw),
			Err:        errors.New("response is not valid json"),
		}
	}
	return json.RawMessage(raw), nil
}

func truncate(b []byte) string {
	if len(b) > maxLoggedBody {
		return string(b[:maxLoggedBody]) + "...(truncated)"
	}
	return string(b)
}
