package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresRepository writes registrations to the normalized schema:
//
//	CREATE TABLE countries (
//	    id   SERIAL PRIMARY KEY,
//	    name TEXT NOT NULL UNIQUE
//	);
//	CREATE TABLE cities (
//	    id          SERIAL PRIMARY KEY,
//	    name        TEXT NOT NULL,
//	    postal_code TEXT NOT NULL,
//	    country_id  INT NOT NULL REFERENCES countries(id),
//	    UNIQUE (name, postal_code, country_id)
//	);
//	CREATE TABLE addresses (
//	    id           SERIAL PRIMARY KEY,
//	    street_name  TEXT NOT NULL,
//	    house_number INT NOT NULL,
//	    addition     TEXT,
//	    city_id      INT NOT NULL REFERENCES cities(id),
//	    UNIQUE (street_name, house_number, addition, city_id)
//	);
//	CREATE TABLE customers (
//	    id         SERIAL PRIMARY KEY,
//	    gender     TEXT NOT NULL,
//	    title      TEXT,
//	    first_name TEXT NOT NULL,
//	    last_name  TEXT NOT NULL,
//	    birth_date DATE NOT NULL,
//	    address_id INT NOT NULL REFERENCES addresses(id)
//	);
//	CREATE TABLE contacts (
//	    id          SERIAL PRIMARY KEY,
//	    customer_id INT NOT NULL REFERENCES customers(id),
//	    email       TEXT NOT NULL,
//	    telephone   TEXT NOT NULL
//	);
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM contacts WHERE email = $1)
	`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("customer: email lookup: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Persist(ctx context.Context, reg *Registration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("customer: begin: %w", err)
	}
	defer tx.Rollback()

	countryID, err := getOrCreate(ctx, tx,
		`SELECT id FROM countries WHERE name = $1`,
		`INSERT INTO countries (name) VALUES ($1) RETURNING id`,
		reg.CountryName)
	if err != nil {
		return fmt.Errorf("customer: country: %w", err)
	}

	cityID, err := getOrCreate(ctx, tx,
		`SELECT id FROM cities WHERE name = $1 AND postal_code = $2 AND country_id = $3`,
		`INSERT INTO cities (name, postal_code, country_id) VALUES ($1, $2, $3) RETURNING id`,
		reg.City, reg.PostalCode, countryID)
	if err != nil {
		return fmt.Errorf("customer: city: %w", err)
	}

	addressID, err := getOrCreate(ctx, tx,
		`SELECT id FROM addresses WHERE street_name = $1 AND house_number = $2 AND addition = $3 AND city_id = $4`,
		`INSERT INTO addresses (street_name, house_number, addition, city_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		reg.StreetName, reg.HouseNumber, reg.HouseNumberAddition, cityID)
	if err != nil {
		return fmt.Errorf("customer: address: %w", err)
	}

	var customerID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO customers (gender, title, first_name, last_name, birth_date, address_id)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6)
		RETURNING id
	`, string(reg.Gender), string(reg.Title), reg.FirstName, reg.LastName, reg.BirthDate, addressID).Scan(&customerID)
	if err != nil {
		return fmt.Errorf("customer: insert customer: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO contacts (customer_id, email, telephone)
		VALUES ($1, $2, $3)
	`, customerID, reg.Email, reg.Telephone)
	if err != nil {
		return fmt.Errorf("customer: insert contact: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("customer: commit: %w", err)
	}
	return nil
}

func getOrCreate(ctx context.Context, tx *sql.Tx, selectQ, insertQ string, args ...any) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, selectQ, args...).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}
	if err := tx.QueryRowContext(ctx, insertQ, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
