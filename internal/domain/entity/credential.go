package entity

// Credential is a password credential kept by the local auth provider under
// credentials/<identityKey>.
type Credential struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	// TokensValidAfter is a unix timestamp; tokens issued before it are revoked.
	TokensValidAfter int64 `json:"tokensValidAfter"`
}
