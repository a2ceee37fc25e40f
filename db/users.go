package db

import (
	"avien/model"
	"database/sql"
	"time"
)

// GetProfile retrieves a user profile by user id.
func GetProfile(userID int64) (*model.Profile, error) {
	row := DB.QueryRow(`SELECT
		user_id, COALESCE(first_name, '') as first_name, display_name,
		terms_accepted_at, created_at
	FROM profiles WHERE user_id = ?`, userID)

	var p model.Profile
	err := row.Scan(&p.UserID, &p.FirstName, &p.DisplayName, &p.TermsAcceptedAt, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// RecordConsent upserts a profile and stamps the terms acceptance time.
func RecordConsent(userID int64, firstName string) error {
	now := time.Now().Unix()
	_, err := DB.Exec(`
		INSERT INTO profiles (user_id, first_name, terms_accepted_at, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
		first_name = excluded.first_name,
		terms_accepted_at = excluded.terms_accepted_at;
	`, userID, firstName, now, now)
	return err
}

// HasConsent reports whether the user has accepted the terms before.
func HasConsent(userID int64) (bool, error) {
	p, err := GetProfile(userID)
	if err != nil {
		if err == ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return p.TermsAcceptedAt > 0, nil
}

// SetDisplayName updates the alias shown on a user's comments.
func SetDisplayName(userID int64, name string) error {
	now := time.Now().Unix()
	_, err := DB.Exec(`
		INSERT INTO profiles (user_id, display_name, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
		display_name = excluded.display_name;
	`, userID, name, now)
	return err
}

// CommentLabel returns the name to show next to a user's comments:
// the profile alias when set, the given fallback otherwise.
func CommentLabel(userID int64, fallback string) string {
	p, err := GetProfile(userID)
	if err != nil || p.DisplayName == "" {
		return fallback
	}
	return p.DisplayName
}

// IsUserBanned checks if a user is in the banned_users table.
func IsUserBanned(userID int64) (bool, error) {
	var id int64
	err := DB.QueryRow("SELECT user_id FROM banned_users WHERE user_id = ?", userID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil // User is not banned
		}
		return false, err // An actual error occurred
	}
	return true, nil // User is found in the banned list
}

// BanUser adds a user to the banned_users table.
func BanUser(userID int64, reason string) error {
	_, err := DB.Exec(
		"INSERT OR REPLACE INTO banned_users(user_id, reason, timestamp) VALUES(?, ?, ?)",
		userID, reason, time.Now().Unix(),
	)
	return err
}
