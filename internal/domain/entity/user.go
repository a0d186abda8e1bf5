// Package entity contains the core business objects of the project,
// each representing a record stored in the realtime database.
package entity

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UserProfile is the account record kept under users/<identityKey>.
// There is exactly one per authenticated identity.
type UserProfile struct {
	IdentityKey string `json:"-"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	// MigratedFrom is set on the copy written by an identity migration and
	// names the email the profile was moved from.
	MigratedFrom string `json:"migratedFrom,omitempty"`
	// MigratingTo is set on the source profile just before it is copied and
	// names the email the copy is written for.
	MigratingTo string `json:"migratingTo,omitempty"`
}

// Profile field names, used where documents are rewritten field by field.
const (
	ProfileFieldEmail        = "email"
	ProfileFieldName         = "name"
	ProfileFieldSurname      = "surname"
	ProfileFieldMigratedFrom = "migratedFrom"
	ProfileFieldMigratingTo  = "migratingTo"
)

// Initials returns the upper-cased first letters of name and surname.
func (p UserProfile) Initials() string {
	var b strings.Builder
	for _, s := range []string{p.Name, p.Surname} {
		if r, size := utf8.DecodeRuneInString(s); size > 0 {
			b.WriteRune(unicode.ToUpper(r))
		}
	}

	return b.String()
}

// WithEmail returns a copy of the profile owned by email.
func (p UserProfile) WithEmail(email string) UserProfile {
	p.Email = email

	return p
}

// WithName returns a copy with name and surname replaced.
func (p UserProfile) WithName(name, surname string) UserProfile {
	p.Name = name
	p.Surname = surname

	return p
}
