package llm

import (
	"context"
	"encoding/json"

	"cloud.google.com/go/aiplatform/apiv1beta1/aiplatformpb"
	vertexgenai "cloud.google.com/go/vertexai/genai"
)

type VertexGemini struct {
	client *vertexgenai.Client
	model  *vertexgenai.GenerativeModel
}

func NewVertexGemini(ctx context.Context, projectID, location, modelName string) (*VertexGemini, error) {
	c, err := vertexgenai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	m := c.GenerativeModel(modelName)
	return &VertexGemini{client: c, model: m}, nil
}

func (v *VertexGemini) Close() error { return v.client.Close() }

// Generate re-encodes the SDK response into the generateContent JSON shape
// so callers see the same payload whichever backend is configured.
func (v *VertexGemini) Generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	resp, err := v.model.GenerateContent(ctx, vertexgenai.Text(prompt))
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	return json.Marshal(toPayload(resp))
}

type payloadCandidate struct {
	Index        int32         `json:"index"`
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

type payload struct {
	Candidates []payloadCandidate `json:"candidates"`
}

func toPayload(resp *vertexgenai.GenerateContentResponse) payload {
	out := payload{Candidates: []payloadCandidate{}}
	if resp == nil {
		return out
	}
	for _, cand := range resp.Candidates {
		if cand == nil {
			continue
		}
		pc := payloadCandidate{
			Index:   cand.Index,
			Content: geminiContent{Role: "model", Parts: []geminiPart{}},
		}
		if cand.FinishReason != vertexgenai.FinishReasonUnspecified {
			pc.FinishReason = finishReason(cand.FinishReason)
		}
		if cand.Content != nil {
			if cand.Content.Role != "" {
				pc.Content.Role = cand.Content.Role
			}
			for _, part := range cand.Content.Parts {
				if t, ok := part.(vertexgenai.Text); ok {
					pc.Content.Parts = append(pc.Content.Parts, geminiPart{Text: string(t)})
				}
			}
		}
		out.Candidates = append(out.Candidates, pc)
	}
	return out
}

// finishReason renders the wire enum name ("STOP", "MAX_TOKENS"), not the
// Go constant name the SDK's String method returns.
func finishReason(r vertexgenai.FinishReason) string {
	return aiplatformpb.Candidate_FinishReason(r).String()
}
