package services

import (
	"github.com/sirupsen/logrus"

	apperrors "oficina-tg-client/internal/errors"
	"oficina-tg-client/internal/models"
)

// UserStateService manages user conversation states
type UserStateService struct {
	store  StateStore
	logger *logrus.Logger
}

// NewUserStateService creates a new user state service
func NewUserStateService(store StateStore, logger *logrus.Logger) *UserStateService {
	return &UserStateService{
		store:  store,
		logger: logger,
	}
}

// GetState gets a user's state
func (s *UserStateService) GetState(userID int64) (*models.UserState, error) {
	state, found, err := s.store.Get(userID)
	if err != nil {
		return nil, &apperrors.StateError{UserID: userID, State: "unknown", Message: err.Error()}
	}

	if !found {
		// Return default state if not found
		return &models.UserState{State: models.Default}, nil
	}

	return state, nil
}

// SetState sets a user's state
func (s *UserStateService) SetState(userID int64, state models.UserState) error {
	if err := s.store.Set(userID, state); err != nil {
		return &apperrors.StateError{UserID: userID, State: state.State.String(), Message: err.Error()}
	}
	s.logger.Debugf("Set state for user %d: %s", userID, state.State)
	return nil
}

// ClearState clears a user's state
func (s *UserStateService) ClearState(userID int64) error {
	if err := s.store.Delete(userID); err != nil {
		return &apperrors.StateError{UserID: userID, State: "unknown", Message: err.Error()}
	}
	s.logger.Debugf("Cleared state for user %d", userID)
	return nil
}

// WithConversationState updates a user's conversation state
func (s *UserStateService) WithConversationState(userID int64, conversationState models.ConversationState) error {
	state, err := s.GetState(userID)
	if err != nil {
		return err
	}

	state.State = conversationState
	return s.SetState(userID, *state)
}

// WithPayload updates a user's payload
func (s *UserStateService) WithPayload(userID int64, payload string) error {
	state, err := s.GetState(userID)
	if err != nil {
		return err
	}

	state.Payload = &payload
	return s.SetState(userID, *state)
}

// WithDay updates the day picked on the booking calendar
func (s *UserStateService) WithDay(userID int64, day int) error {
	state, err := s.GetState(userID)
	if err != nil {
		return err
	}

	state.Day = &day
	return s.SetState(userID, *state)
}

// WithQuote updates the quote the user is acting on
func (s *UserStateService) WithQuote(userID int64, quoteID int64) error {
	state, err := s.GetState(userID)
	if err != nil {
		return err
	}

	state.QuoteID = &quoteID
	return s.SetState(userID, *state)
}
