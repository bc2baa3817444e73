package models

// User represents an account entity used for authentication and ownership of
// orders. Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique user identifier.
	ID int64 `json:"id"`

	// Username is the unique login name. Required, non-empty.
	Username string `json:"username"`

	// Password carries the plain-text credential on inbound requests only
	// (registration, login, user create/update). It is never persisted and
	// never serialized back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash actually stored for the account.
	// Excluded from JSON entirely.
	PasswordHash string `json:"-"`

	// Orders is the back-reference to orders owned by the user. Populated
	// only on single-user reads; not an ownership relation.
	Orders []Order `json:"orders,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Sanitized returns a copy of the user with all credential material cleared.
// Handlers must serialize only sanitized users.
func (u User) Sanitized() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}
