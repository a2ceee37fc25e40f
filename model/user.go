package model

// Profile represents a user profile record from the profiles table.
// DisplayName, when set, replaces the platform first name on comments.
type Profile struct {
	UserID          int64
	FirstName       string
	DisplayName     string
	TermsAcceptedAt int64
	CreatedAt       int64
}

// Label returns the name shown next to the user's comments.
func (p *Profile) Label() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.FirstName
}
