package services

import (
	"context"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"oficina-tg-client/internal/constants"
	"oficina-tg-client/internal/supportchat"
	"oficina-tg-client/internal/supportflow"
)

// SupportService keeps one live support session per Telegram user
type SupportService struct {
	api      supportchat.ChatAPI
	engine   *supportflow.Engine
	sessions *cache.Cache
	logger   *logrus.Logger
}

// NewSupportService creates a new support service. Idle sessions expire and are closed.
func NewSupportService(api supportchat.ChatAPI, engine *supportflow.Engine, logger *logrus.Logger) *SupportService {
	sessions := cache.New(constants.CacheExpiration*time.Minute, constants.CacheCleanupInterval*time.Minute)
	sessions.OnEvicted(func(key string, value interface{}) {
		if session, ok := value.(*supportchat.Session); ok {
			session.Close()
			logger.Debugf("Support session of user %s closed", key)
		}
	})

	return &SupportService{
		api:      api,
		engine:   engine,
		sessions: sessions,
		logger:   logger,
	}
}

func sessionKey(telegramID int64) string {
	return strconv.FormatInt(telegramID, 10)
}

// Open starts a fresh support session for a user, closing any previous one
func (s *SupportService) Open(ctx context.Context, telegramID, clientID int64) (*supportchat.Session, supportchat.Outcome, error) {
	s.End(telegramID)

	session := supportchat.NewSession(s.api, s.engine, s.logger)
	s.sessions.Set(sessionKey(telegramID), session, cache.DefaultExpiration)

	outcome, err := session.Start(ctx, clientID)
	if err != nil {
		return nil, supportchat.Outcome{}, err
	}

	return session, outcome, nil
}

// Get returns the live session of a user and extends its lifetime
func (s *SupportService) Get(telegramID int64) (*supportchat.Session, bool) {
	value, found := s.sessions.Get(sessionKey(telegramID))
	if !found {
		return nil, false
	}

	session, ok := value.(*supportchat.Session)
	if !ok || session.Closed() {
		return nil, false
	}

	s.sessions.Set(sessionKey(telegramID), session, cache.DefaultExpiration)
	return session, true
}

// End closes and forgets the session of a user
func (s *SupportService) End(telegramID int64) {
	s.sessions.Delete(sessionKey(telegramID))
}

// Count returns the number of live sessions
func (s *SupportService) Count() int {
	return s.sessions.ItemCount()
}
