package db

import "fmt"

// CreateTables brings the schema up on boot. Statements are idempotent so
// restarting against an existing database is safe.
func CreateTables() error {
	stmts := []struct {
		name  string
		query string
	}{
		{"users", `
			CREATE TABLE IF NOT EXISTS users (
				id SERIAL PRIMARY KEY,
				full_name VARCHAR(100) NOT NULL,
				email VARCHAR(255) NOT NULL UNIQUE,
				password_hash VARCHAR(255) NOT NULL,
				profile_picture_url VARCHAR(255)
			)`},
		{"incomes", `
			CREATE TABLE IF NOT EXISTS incomes (
				id SERIAL PRIMARY KEY,
				user_id INTEGER NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
				monthly_income NUMERIC(12, 2) NOT NULL,
				currency VARCHAR(10) NOT NULL DEFAULT '$'
			)`},
		{"other_incomes", `
			CREATE TABLE IF NOT EXISTS other_incomes (
				id SERIAL PRIMARY KEY,
				user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				source_name VARCHAR(100) NOT NULL,
				amount NUMERIC(12, 2) NOT NULL
			)`},
		{"budgets", `
			CREATE TABLE IF NOT EXISTS budgets (
				id SERIAL PRIMARY KEY,
				user_id INTEGER NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
				total_monthly_budget NUMERIC(12, 2) NOT NULL
			)`},
		{"category_budgets", `
			CREATE TABLE IF NOT EXISTS category_budgets (
				id SERIAL PRIMARY KEY,
				user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				category_name VARCHAR(50) NOT NULL,
				amount NUMERIC(12, 2) NOT NULL,
				UNIQUE (user_id, category_name)
			)`},
		{"expenses", `
			CREATE TABLE IF NOT EXISTS expenses (
				id SERIAL PRIMARY KEY,
				user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				title VARCHAR(100) NOT NULL,
				amount NUMERIC(12, 2) NOT NULL,
				category VARCHAR(50) NOT NULL,
				expense_date DATE NOT NULL,
				description TEXT,
				payment_method VARCHAR(50) NOT NULL
			)`},
		{"investments", `
			CREATE TABLE IF NOT EXISTS investments (
				id SERIAL PRIMARY KEY,
				user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				investment_name VARCHAR(100) NOT NULL,
				amount_invested NUMERIC(12, 2) NOT NULL,
				investment_type VARCHAR(50) NOT NULL,
				investment_date DATE NOT NULL
			)`},
		{"assets", `
			CREATE TABLE IF NOT EXISTS assets (
				id SERIAL PRIMARY KEY,
				user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				asset_name VARCHAR(100) NOT NULL,
				value NUMERIC(12, 2) NOT NULL
			)`},
		{"liabilities", `
			CREATE TABLE IF NOT EXISTS liabilities (
				id SERIAL PRIMARY KEY,
				user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				liability_name VARCHAR(100) NOT NULL,
				amount_owed NUMERIC(12, 2) NOT NULL
			)`},
		{"financial_goals", `
			CREATE TABLE IF NOT EXISTS financial_goals (
				id SERIAL PRIMARY KEY,
				user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				goal_name VARCHAR(100) NOT NULL,
				target_amount NUMERIC(15, 2) NOT NULL,
				goal_type VARCHAR(50) NOT NULL,
				created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
			)`},
	}

	for _, s := range stmts {
		if _, err := DB.Exec(s.query); err != nil {
			return fmt.Errorf("create %s table: %w", s.name, err)
		}
	}
	return nil
}
