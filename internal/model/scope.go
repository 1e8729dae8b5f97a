package model

// Scope identifies the caller a request acts for.
type Scope struct {
	UserID   string
	Username string
}

// Valid reports whether the scope names an owner.
func (s Scope) Valid() bool {
	return s.UserID != ""
}
