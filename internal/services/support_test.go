package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oficina-tg-client/internal/models"
	"oficina-tg-client/internal/supportflow"
)

type fakeChatAPI struct{}

func (fakeChatAPI) StartOrResumeChatSession(_ context.Context, _ int64) (*models.ChatSession, error) {
	return &models.ChatSession{ID: 1, Status: "ABERTO"}, nil
}

func (fakeChatAPI) ListMessages(_ context.Context, _ int64) ([]models.ChatMessage, error) {
	return nil, nil
}

func (fakeChatAPI) PostMessage(_ context.Context, _ int64, text string) (*models.ChatMessage, error) {
	return &models.ChatMessage{Content: text}, nil
}

func (fakeChatAPI) FinalizeSession(_ context.Context, id int64) (*models.ChatSession, error) {
	return &models.ChatSession{ID: id}, nil
}

func TestSupportServiceLifecycle(t *testing.T) {
	svc := NewSupportService(fakeChatAPI{}, supportflow.NewEngine(supportflow.DefaultMenu()), quietLogger())
	ctx := context.Background()

	first, outcome, err := svc.Open(ctx, 100, 1)
	require.NoError(t, err)
	assert.Len(t, outcome.Replies, 1)
	assert.Equal(t, 1, svc.Count())

	got, ok := svc.Get(100)
	require.True(t, ok)
	assert.Same(t, first, got)

	second, _, err := svc.Open(ctx, 100, 1)
	require.NoError(t, err)
	assert.True(t, first.Closed(), "reopening closes the previous session")
	assert.False(t, second.Closed())
	assert.Equal(t, 1, svc.Count())

	svc.End(100)
	assert.True(t, second.Closed())
	assert.Equal(t, 0, svc.Count())

	_, ok = svc.Get(100)
	assert.False(t, ok)
}
