package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"oficina-tg-client/internal/models"
)

// QuoteHistory is the quote list split for display
type QuoteHistory struct {
	Highlight *models.Quote
	Others    []models.Quote
}

// QuoteService reads and updates the client's quotes
type QuoteService struct {
	api    QuoteAPI
	logger *logrus.Logger
}

// NewQuoteService creates a new quote service
func NewQuoteService(api QuoteAPI, logger *logrus.Logger) *QuoteService {
	return &QuoteService{
		api:    api,
		logger: logger,
	}
}

// History returns the client's quotes. The first quote awaiting approval is
// highlighted, otherwise the newest one.
func (s *QuoteService) History(ctx context.Context, clientID int64) (*QuoteHistory, error) {
	quotes, err := s.api.GetQuoteHistory(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote history: %w", err)
	}

	return SplitQuotes(quotes), nil
}

// SplitQuotes picks the highlighted quote and keeps the rest in order
func SplitQuotes(quotes []models.Quote) *QuoteHistory {
	history := &QuoteHistory{Others: make([]models.Quote, 0, len(quotes))}
	if len(quotes) == 0 {
		return history
	}

	pick := 0
	for i := range quotes {
		if quotes[i].AwaitsApproval() {
			pick = i
			break
		}
	}

	highlight := quotes[pick]
	history.Highlight = &highlight
	for i, q := range quotes {
		if i != pick {
			history.Others = append(history.Others, q)
		}
	}
	return history
}

// Accept approves a quote
func (s *QuoteService) Accept(ctx context.Context, quoteID int64) (*models.Quote, error) {
	quote, err := s.api.AcceptQuote(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to accept quote %d: %w", quoteID, err)
	}
	s.logger.Infof("Quote %d accepted", quoteID)
	return quote, nil
}

// Finalize marks the service of a quote as done
func (s *QuoteService) Finalize(ctx context.Context, quoteID int64) (*models.Quote, error) {
	quote, err := s.api.FinalizeQuote(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize quote %d: %w", quoteID, err)
	}
	s.logger.Infof("Quote %d finalized", quoteID)
	return quote, nil
}
