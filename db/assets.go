package db

import (
	"context"
	"fmt"

	"finance-tracker/api/models"
)

func CreateAsset(ctx context.Context, a *models.Asset) error {
	query := `
		INSERT INTO assets (user_id, asset_name, value)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := DB.QueryRowContext(ctx, query, a.UserID, a.Name, a.Value).Scan(&a.ID); err != nil {
		return fmt.Errorf("error creating asset for user %d: %w", a.UserID, err)
	}
	return nil
}

func ListAssets(ctx context.Context, userID int64) ([]models.Asset, error) {
	query := `
		SELECT id, user_id, asset_name, value
		FROM assets
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing assets for user %d: %w", userID, err)
	}
	defer rows.Close()

	assets := []models.Asset{}
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Value); err != nil {
			return nil, fmt.Errorf("error scanning asset: %w", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return assets, nil
}

func DeleteAsset(ctx context.Context, assetID, userID int64) error {
	query := `
		DELETE FROM assets
		WHERE id = $1 AND user_id = $2
	`
	if _, err := DB.ExecContext(ctx, query, assetID, userID); err != nil {
		return fmt.Errorf("error deleting asset %d for user %d: %w", assetID, userID, err)
	}
	return nil
}

func CreateLiability(ctx context.Context, l *models.Liability) error {
	query := `
		INSERT INTO liabilities (user_id, liability_name, amount_owed)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := DB.QueryRowContext(ctx, query, l.UserID, l.Name, l.AmountOwed).Scan(&l.ID); err != nil {
		return fmt.Errorf("error creating liability for user %d: %w", l.UserID, err)
	}
	return nil
}

func ListLiabilities(ctx context.Context, userID int64) ([]models.Liability, error) {
	query := `
		SELECT id, user_id, liability_name, amount_owed
		FROM liabilities
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing liabilities for user %d: %w", userID, err)
	}
	defer rows.Close()

	liabilities := []models.Liability{}
	for rows.Next() {
		var l models.Liability
		if err := rows.Scan(&l.ID, &l.UserID, &l.Name, &l.AmountOwed); err != nil {
			return nil, fmt.Errorf("error scanning liability: %w", err)
		}
		liabilities = append(liabilities, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return liabilities, nil
}

func DeleteLiability(ctx context.Context, liabilityID, userID int64) error {
	query := `
		DELETE FROM liabilities
		WHERE id = $1 AND user_id = $2
	`
	if _, err := DB.ExecContext(ctx, query, liabilityID, userID); err != nil {
		return fmt.Errorf("error deleting liability %d for user %d: %w", liabilityID, userID, err)
	}
	return nil
}
