// Package identity maps user emails to the storage-safe keys used by the
// realtime database, which forbids '.' in keys.
package identity

import (
	"strings"
	"sync"

	domainerrors "lounge/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func emailValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Validate fails with ErrInvalidIdentity unless email is a syntactically
// valid address. Surrounding whitespace is not accepted.
func Validate(email string) error {
	if email == "" || strings.TrimSpace(email) != email {
		return errors.WithStack(domainerrors.ErrInvalidIdentity.WithDetails(email))
	}
	if err := emailValidator().Var(email, "email"); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidIdentity.WithDetails(email))
	}

	return nil
}

// Encode returns the identity key for email: every '.' becomes '_', case is
// preserved. It fails with ErrInvalidIdentity for malformed emails.
//
// The mapping is only reversible for emails without '_'; "a_b@x.com" and
// "a.b@x.com" share the key "a_b@x_com". Existing keys depend on this
// encoding, so it is kept as is.
func Encode(email string) (string, error) {
	if err := Validate(email); err != nil {
		return "", err
	}

	return EncodeUnchecked(email), nil
}

// EncodeUnchecked applies the key mapping without validating email.
func EncodeUnchecked(email string) string {
	return strings.ReplaceAll(email, ".", "_")
}

// MustEncode is Encode for emails that were already validated.
func MustEncode(email string) string {
	key, err := Encode(email)
	if err != nil {
		panic(err)
	}

	return key
}

// Decode returns the email for an identity key produced by Encode.
func Decode(key string) string {
	return strings.ReplaceAll(key, "_", ".")
}

// IsKey reports whether s looks like an identity key rather than an email.
// Encoded keys never contain '.'.
func IsKey(s string) bool {
	return !strings.Contains(s, ".")
}

// Normalize trims and lower-cases an email for value comparisons.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Equal compares two emails the way value-keyed collections are matched:
// trimmed and case-insensitive.
func Equal(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
