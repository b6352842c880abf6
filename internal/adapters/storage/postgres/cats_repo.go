package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"petweb/internal/domain/cats"
)

type CatsRepo struct {
	db *sql.DB
}

func NewCatsRepo(db *sql.DB) *CatsRepo {
	return &CatsRepo{db: db}
}

func (r *CatsRepo) Create(ctx context.Context, c cats.Cat) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cats (
			id, name, breed, age, gender, image,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		c.ID,
		c.Name,
		c.Breed,
		c.Age,
		string(c.Gender),
		toNullString(c.Image),
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

func (r *CatsRepo) GetByID(ctx context.Context, id string) (cats.Cat, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return cats.Cat{}, cats.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, breed, age, gender, image, created_at, updated_at
		FROM cats
		WHERE id = $1
	`, id)

	return scanCat(row)
}

func (r *CatsRepo) List(ctx context.Context) ([]cats.Cat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, breed, age, gender, image, created_at, updated_at
		FROM cats
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]cats.Cat, 0)
	for rows.Next() {
		c, err := scanCat(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func (r *CatsRepo) Update(ctx context.Context, c cats.Cat) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cats
		SET
			name = $2,
			breed = $3,
			age = $4,
			gender = $5,
			image = $6,
			updated_at = $7
		WHERE id = $1
	`,
		c.ID,
		c.Name,
		c.Breed,
		c.Age,
		string(c.Gender),
		toNullString(c.Image),
		c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return cats.ErrNotFound
	}
	return nil
}

// Delete borra y devuelve el registro borrado en un solo round-trip.
func (r *CatsRepo) Delete(ctx context.Context, id string) (cats.Cat, error) {
	row := r.db.QueryRowContext(ctx, `
		DELETE FROM cats
		WHERE id = $1
		RETURNING id, name, breed, age, gender, image, created_at, updated_at
	`, id)

	return scanCat(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCat(row rowScanner) (cats.Cat, error) {
	var c cats.Cat
	var gender string
	var image sql.NullString

	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Breed,
		&c.Age,
		&gender,
		&image,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cats.Cat{}, cats.ErrNotFound
		}
		return cats.Cat{}, err
	}

	c.Gender = cats.Gender(gender)
	if image.Valid {
		c.Image = image.String
	}

	return c, nil
}

// image es NULL en la tabla cuando el gato no tiene foto
func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
