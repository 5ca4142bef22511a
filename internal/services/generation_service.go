package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/konselor/internal/providers/llm"
	"github.com/yoockh/konselor/internal/utils"
)

// GenerationService is the AI proxy: it validates the prompt, forwards it
// with the server-held credential and hands back the upstream payload.
// Nothing is persisted here.
type GenerationService interface {
	Generate(ctx context.Context, prompt string) (json.RawMessage, error)
}

type generationService struct {
	provider llm.Provider
	log      logrus.FieldLogger
}

func NewGenerationService(provider llm.Provider, log logrus.FieldLogger) GenerationService {
	return &generationService{provider: provider, log: log}
}

func (s *generationService) Generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	const op = "GenerationService.Generate"

	if prompt == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, utils.MsgPromptRequired, nil)
	}

	out, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		entry := s.log.WithField("op", op).WithError(err)
		var ue *llm.UpstreamError
		if errors.As(err, &ue) {
			entry = entry.WithFields(logrus.Fields{
				"upstream_status": ue.StatusCode,
				"upstream_body":   ue.Body,
			})
		}
		entry.Error("gemini request failed")
		return nil, utils.E(utils.CodeUpstream, op, "gemini request failed", err)
	}
	return out, nil
}
