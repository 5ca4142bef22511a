package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/konselor/internal/providers/llm"
	"github.com/yoockh/konselor/internal/utils"
)

func TestSessionServiceCreate(t *testing.T) {
	repo := &fakeSessionRepo{}
	svc := NewSessionService(repo)

	s1, err := svc.Create(context.Background(), "Ayu", "Bali", "SMP")
	require.NoError(t, err)
	s2, err := svc.Create(context.Background(), "", "", "")
	require.NoError(t, err)

	assert.Less(t, s1.ID, s2.ID)
	assert.Equal(t, "Ayu", repo.rows[0].UserName)
	// no defaulting at this layer
	assert.Equal(t, "", repo.rows[1].UserName)
	assert.Equal(t, "", repo.rows[1].EthnicGroup)
}

func TestSessionServiceCreateStorageError(t *testing.T) {
	svc := NewSessionService(&fakeSessionRepo{err: errors.New("connection refused")})

	_, err := svc.Create(context.Background(), "Ayu", "Umum", "Umum")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeStorage))
}

func TestInteractionServiceRecord(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	repo := &fakeInteractionRepo{}
	svc := NewInteractionService(repo, log)

	row, err := svc.Record(context.Background(), 42, "Rencana Aksi", "lulus SNBT", "1. Buat jadwal")
	require.NoError(t, err)
	assert.Equal(t, int64(42), row.SessionID)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, "lulus SNBT", repo.rows[0].UserInput)
	assert.Equal(t, "1. Buat jadwal", repo.rows[0].AIOutput)
}

func TestInteractionServiceRecordForeignKeyViolation(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	fk := fmt.Errorf("insert: %w", &pq.Error{Code: "23503"})
	svc := NewInteractionService(&fakeInteractionRepo{err: fk}, log)

	_, err := svc.Record(context.Background(), 999, "Rencana Aksi", "a", "b")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeStorage))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, int64(999), entry.Data["session_id"])
}

func TestGenerationServiceRejectsEmptyPrompt(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	p := &fakeProvider{}
	svc := NewGenerationService(p, log)

	_, err := svc.Generate(context.Background(), "")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	var ae *utils.AppError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, utils.MsgPromptRequired, ae.Message)
	assert.Zero(t, p.calls)
}

func TestGenerationServicePassesPayloadThrough(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	payload := json.RawMessage(`{"candidates":[{"content":{"parts":[{"text":"hai"}]}}]}`)
	p := &fakeProvider{out: payload}
	svc := NewGenerationService(p, log)

	out, err := svc.Generate(context.Background(), "valid prompt")
	require.NoError(t, err)
	assert.Equal(t, string(payload), string(out))
	assert.Equal(t, []string{"valid prompt"}, p.prompts)
}

func TestGenerationServiceUpstreamError(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	p := &fakeProvider{err: &llm.UpstreamError{StatusCode: 500, Body: "backend exploded"}}
	svc := NewGenerationService(p, log)

	_, err := svc.Generate(context.Background(), "valid prompt")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeUpstream))

	var ae *utils.AppError
	require.True(t, errors.As(err, &ae))
	assert.NotContains(t, ae.Message, "backend exploded")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, 500, entry.Data["upstream_status"])
	assert.Equal(t, "backend exploded", entry.Data["upstream_body"])
}
