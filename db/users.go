package db

import (
	"context"
	"database/sql"
	"fmt"

	"finance-tracker/api/models"
)

// ErrEmailTaken is returned by CreateUser when the email is already
// registered, so handlers can surface it as a validation failure rather
// than a server error.
var ErrEmailTaken = fmt.Errorf("email address already registered")

func CreateUser(ctx context.Context, fullName, email, passwordHash string) (int64, error) {
	var exists int64
	err := DB.QueryRowContext(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&exists)
	if err == nil {
		return 0, ErrEmailTaken
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("error checking email %s: %w", email, err)
	}

	query := `
		INSERT INTO users (full_name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	if err := DB.QueryRowContext(ctx, query, fullName, email, passwordHash).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating user %s: %w", email, err)
	}
	return id, nil
}

func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, full_name, email, password_hash, profile_picture_url
		FROM users
		WHERE email = $1
	`
	user := &models.User{}
	err := DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.PasswordHash,
		&user.ProfilePictureURL,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting user by email %s: %w", email, err)
	}
	return user, nil
}

// GetUserByID returns the user row with the display currency attached,
// defaulting to "$" when no income row exists yet.
func GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	query := `
		SELECT id, full_name, email, password_hash, profile_picture_url
		FROM users
		WHERE id = $1
	`
	user := &models.User{}
	err := DB.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.PasswordHash,
		&user.ProfilePictureURL,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting user %d: %w", userID, err)
	}

	user.Currency = "$"
	var currency string
	err = DB.QueryRowContext(ctx, `SELECT currency FROM incomes WHERE user_id = $1`, userID).Scan(&currency)
	if err == nil {
		user.Currency = currency
	} else if err != sql.ErrNoRows {
		return nil, fmt.Errorf("error getting currency for user %d: %w", userID, err)
	}
	return user, nil
}

func UpdateProfilePicture(ctx context.Context, userID int64, path string) error {
	query := `
		UPDATE users
		SET profile_picture_url = $1
		WHERE id = $2
	`
	if _, err := DB.ExecContext(ctx, query, path, userID); err != nil {
		return fmt.Errorf("error updating profile picture for user %d: %w", userID, err)
	}
	return nil
}
