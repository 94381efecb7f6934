package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	apperrors "oficina-tg-client/internal/errors"
	"oficina-tg-client/internal/models"
	"oficina-tg-client/internal/validation"
)

// DefaultDiagnosticDescription is sent when only a photo is given
const DefaultDiagnosticDescription = "Analise esta imagem em busca de defeitos automotivos."

// DiagnosticService asks the backend to analyze a problem
type DiagnosticService struct {
	api    DiagnosticAPI
	logger *logrus.Logger
}

// NewDiagnosticService creates a new diagnostic service
func NewDiagnosticService(api DiagnosticAPI, logger *logrus.Logger) *DiagnosticService {
	return &DiagnosticService{
		api:    api,
		logger: logger,
	}
}

// Analyze sends the description and optional photo and returns the diagnosis text
func (s *DiagnosticService) Analyze(ctx context.Context, description string, image *models.DiagnosticImage) (string, error) {
	description, err := validation.ValidateDescription(description)
	if err != nil {
		return "", err
	}

	if description == "" {
		if image == nil {
			return "", &apperrors.ValidationError{Field: "description", Message: "is required without a photo"}
		}
		description = DefaultDiagnosticDescription
	}

	diagnosis, err := s.api.AnalyzeDiagnostic(ctx, models.DiagnosticRequest{
		Description: description,
		Image:       image,
	})
	if err != nil {
		return "", fmt.Errorf("failed to analyze diagnostic: %w", err)
	}

	s.logger.Debugf("Diagnostic analyzed (photo: %t)", image != nil)
	return diagnosis.Text, nil
}
