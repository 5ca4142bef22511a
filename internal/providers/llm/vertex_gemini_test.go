package llm

import (
	"encoding/json"
	"testing"

	vertexgenai "cloud.google.com/go/vertexai/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPayloadKeepsGenerateContentShape(t *testing.T) {
	resp := &vertexgenai.GenerateContentResponse{
		Candidates: []*vertexgenai.Candidate{
			{
				Index:        0,
				FinishReason: vertexgenai.FinishReasonStop,
				Content: &vertexgenai.Content{
					Role:  "model",
					Parts: []vertexgenai.Part{vertexgenai.Text("Langkah 1"), vertexgenai.Text(" dan 2")},
				},
			},
			nil,
		},
	}

	b, err := json.Marshal(toPayload(resp))
	require.NoError(t, err)

	var decoded struct {
		Candidates []struct {
			Content struct {
				Role  string `json:"role"`
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
			FinishReason string `json:"finishReason"`
		} `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Len(t, decoded.Candidates, 1)
	assert.Equal(t, "model", decoded.Candidates[0].Content.Role)
	require.Len(t, decoded.Candidates[0].Content.Parts, 2)
	assert.Equal(t, "Langkah 1", decoded.Candidates[0].Content.Parts[0].Text)
	assert.Equal(t, "STOP", decoded.Candidates[0].FinishReason)
}

func TestToPayloadNilResponse(t *testing.T) {
	b, err := json.Marshal(toPayload(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"candidates":[]}`, string(b))
}

func TestFinishReasonUsesWireNames(t *testing.T) {
	assert.Equal(t, "STOP", finishReason(vertexgenai.FinishReasonStop))
	assert.Equal(t, "MAX_TOKENS", finishReason(vertexgenai.FinishReasonMaxTokens))
	assert.Equal(t, "SAFETY", finishReason(vertexgenai.FinishReasonSafety))
	assert.Equal(t, "RECITATION", finishReason(vertexgenai.FinishReasonRecitation))
}

func TestToPayloadOmitsUnspecifiedFinishReason(t *testing.T) {
	resp := &vertexgenai.GenerateContentResponse{
		Candidates: []*vertexgenai.Candidate{{Content: &vertexgenai.Content{Parts: []vertexgenai.Part{vertexgenai.Text("ok")}}}},
	}
	b, err := json.Marshal(toPayload(resp))
	require.NoError(t, err)
	assert.NotContains(t, string(b), "finishReason")
}
