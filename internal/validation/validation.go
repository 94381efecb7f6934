package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"oficina-tg-client/internal/constants"
	apperrors "oficina-tg-client/internal/errors"
)

// ValidateDay validates a day of month typed by the user
func ValidateDay(text string, daysInMonth int) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &apperrors.ValidationError{Field: "day", Message: "must be a number"}
	}

	if day < 1 || day > daysInMonth {
		return 0, &apperrors.ValidationError{
			Field:   "day",
			Message: fmt.Sprintf("must be between 1 and %d", daysInMonth),
		}
	}

	return day, nil
}

// ValidateAddress validates an address used for the shop search
func ValidateAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", &apperrors.ValidationError{Field: "address", Message: "is required"}
	}

	if utf8.RuneCountInString(address) > constants.MaxAddressLength {
		return "", &apperrors.ValidationError{
			Field:   "address",
			Message: fmt.Sprintf("cannot exceed %d characters", constants.MaxAddressLength),
		}
	}

	return address, nil
}

// ValidateSearchTerm validates a service search term. Empty is allowed.
func ValidateSearchTerm(term string) (string, error) {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) > constants.MaxSearchTermLength {
		return "", &apperrors.ValidationError{
			Field:   "term",
			Message: fmt.Sprintf("cannot exceed %d characters", constants.MaxSearchTermLength),
		}
	}
	return term, nil
}

// ValidateDescription validates a free-text problem description
func ValidateDescription(text string) (string, error) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) > constants.MaxDescriptionLength {
		return "", &apperrors.ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("cannot exceed %d characters", constants.MaxDescriptionLength),
		}
	}
	return text, nil
}

// ValidateChoice parses a 1-based list position
func ValidateChoice(text string, count int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &apperrors.ValidationError{Field: "choice", Message: "must be a number"}
	}

	if n < 1 || n > count {
		return 0, &apperrors.ValidationError{
			Field:   "choice",
			Message: fmt.Sprintf("must be between 1 and %d", count),
		}
	}

	return n, nil
}
