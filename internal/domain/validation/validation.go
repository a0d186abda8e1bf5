// Package validation holds the pure input checks run before anything is
// written to the record store.
package validation

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"

	domainerrors "lounge/internal/domain/errors"
	"lounge/internal/domain/entity"

	"github.com/pkg/errors"
)

const flagYes = "yes"

// ValidateServiceRequest checks the item flags of a service request against
// their quantities. Every item flagged "yes" needs a quantity above zero;
// unknown items are rejected.
func ValidateServiceRequest(fields map[string]string, quantities map[string]int) error {
	for item, flag := range fields {
		if !slices.Contains(entity.ServiceItems, item) {
			return errors.WithStack(domainerrors.Validation("unknown service item " + item))
		}
		if !IsFlagged(flag) {
			continue
		}
		if quantities[item] <= 0 {
			return errors.WithStack(domainerrors.Validation(
				fmt.Sprintf("quantity for %s must be greater than 0", item)))
		}
	}
	for item := range quantities {
		if !slices.Contains(entity.ServiceItems, item) {
			return errors.WithStack(domainerrors.Validation("unknown service item " + item))
		}
	}

	return nil
}

// IsFlagged reports whether a service item flag means "requested".
func IsFlagged(flag string) bool {
	return strings.EqualFold(strings.TrimSpace(flag), flagYes)
}

// ValidatePersonName accepts names made of letters, optionally separated by
// single spaces, hyphens or apostrophes.
func ValidatePersonName(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.WithStack(domainerrors.Validation(field + " is required"))
	}

	prevSeparator := true
	for _, r := range value {
		switch {
		case unicode.IsLetter(r):
			prevSeparator = false
		case r == ' ' || r == '-' || r == '\'':
			if prevSeparator {
				return errors.WithStack(domainerrors.Validation(field + " must contain only letters"))
			}
			prevSeparator = true
		default:
			return errors.WithStack(domainerrors.Validation(field + " must contain only letters"))
		}
	}
	if prevSeparator {
		return errors.WithStack(domainerrors.Validation(field + " must contain only letters"))
	}

	return nil
}

// Rating bounds for reviews.
const (
	MinRating = 1
	MaxRating = 5
)

// ValidateReview checks a review before it is stored.
func ValidateReview(review entity.Review, target entity.ReviewTarget, recordKey string) error {
	if !target.IsValid() {
		return errors.WithStack(domainerrors.Validation("review target must be order or booking"))
	}
	if strings.TrimSpace(recordKey) == "" {
		return errors.WithStack(domainerrors.Validation("reviewed record is required"))
	}
	if review.Rating < MinRating || review.Rating > MaxRating {
		return errors.WithStack(domainerrors.Validation(
			fmt.Sprintf("rating must be between %d and %d", MinRating, MaxRating)))
	}
	if strings.TrimSpace(review.Text) == "" {
		return errors.WithStack(domainerrors.Validation("review text is required"))
	}
	if strings.TrimSpace(review.ReviewerName) == "" {
		return errors.WithStack(domainerrors.Validation("reviewer name is required"))
	}

	return nil
}

// ValidateDeletionRequest requires an explicit confirmation and a reason.
func ValidateDeletionRequest(confirmed bool, reason string) error {
	if !confirmed {
		return errors.WithStack(domainerrors.Validation("deletion must be confirmed"))
	}
	if strings.TrimSpace(reason) == "" {
		return errors.WithStack(domainerrors.Validation("a reason is required"))
	}

	return nil
}

// MinPasswordLength is the shortest password the identity provider accepts.
const MinPasswordLength = 6

// ValidatePassword checks a new password against its confirmation.
func ValidatePassword(password, confirmation string) error {
	if len(password) < MinPasswordLength {
		return errors.WithStack(domainerrors.Validation(
			fmt.Sprintf("password must be at least %d characters", MinPasswordLength)))
	}
	if password != confirmation {
		return errors.WithStack(domainerrors.Validation("passwords do not match"))
	}

	return nil
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// LooksLikeEmail is the loose client-side email check used on forms before
// the identity codec's strict validation.
func LooksLikeEmail(s string) bool {
	return emailPattern.MatchString(s)
}
