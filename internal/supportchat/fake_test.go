package supportchat

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"oficina-tg-client/internal/models"
	"oficina-tg-client/internal/supportflow"
)

var errBackendDown = errors.New("backend down")

type fakeChatAPI struct {
	mu sync.Mutex

	session     *models.ChatSession
	history     []models.ChatMessage
	startErr    error
	listErr     error
	postErr     error
	finalizeErr error

	// block, when set, holds PostMessage until it is closed
	block   chan struct{}
	entered chan struct{}

	posts     []string
	finalized []int64
}

func (f *fakeChatAPI) StartOrResumeChatSession(_ context.Context, _ int64) (*models.ChatSession, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	return f.session, nil
}

func (f *fakeChatAPI) ListMessages(_ context.Context, _ int64) ([]models.ChatMessage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.history, nil
}

func (f *fakeChatAPI) PostMessage(_ context.Context, _ int64, text string) (*models.ChatMessage, error) {
	if f.block != nil {
		if f.entered != nil {
			f.entered <- struct{}{}
		}
		<-f.block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.postErr != nil {
		return nil, f.postErr
	}
	f.posts = append(f.posts, text)
	return &models.ChatMessage{ID: int64(len(f.posts)), Content: text, SentByClient: true}, nil
}

func (f *fakeChatAPI) FinalizeSession(_ context.Context, sessionID int64) (*models.ChatSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finalized = append(f.finalized, sessionID)
	if f.finalizeErr != nil {
		return nil, f.finalizeErr
	}
	return &models.ChatSession{ID: sessionID, Status: "FINALIZADO"}, nil
}

func (f *fakeChatAPI) postCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.posts)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestSession(api ChatAPI) *Session {
	return NewSession(api, supportflow.NewEngine(supportflow.DefaultMenu()), quietLogger())
}

func at(minute int) models.Timestamp {
	return models.Timestamp{Time: time.Date(2024, 5, 10, 10, minute, 0, 0, time.Local)}
}
