package models

// User is the account row. Currency is denormalized from the incomes table
// so views can render amounts without a second lookup; it defaults to "$"
// when the user has not set an income yet.
type User struct {
	ID                int64   `json:"id"`
	FullName          string  `json:"full_name"`
	Email             string  `json:"email"`
	PasswordHash      string  `json:"-"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	Currency          string  `json:"currency"`
}
