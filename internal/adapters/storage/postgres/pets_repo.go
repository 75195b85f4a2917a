package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"pet-intake/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

var _ pets.Repository = (*PetsRepo)(nil)

const petColumns = `
	id,
	name, species, breed, location,
	age_months, gender, reason,
	foster_duration, justification,
	contact_email, contact_phone,
	owner_name, national_id, photo_ref,
	registration_status, physical_status, doctor_name, doctor_status,
	discount, total_cost, net_cost`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pet_intakes (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
	`,
		p.ID,
		p.Name, p.Species, p.Breed, p.Location,
		p.AgeMonths, string(p.Gender), string(p.Reason),
		p.FosterDuration, p.Justification,
		p.ContactEmail, p.ContactPhone,
		p.OwnerName, p.NationalID, p.PhotoRef,
		p.RegistrationStatus, string(p.PhysicalStatus), p.DoctorName, p.DoctorStatus,
		p.Discount, p.TotalCost, p.NetCost,
	)
	if isUniqueViolation(err) {
		return pets.ErrAlreadyExists
	}
	return err
}

// 23505 = unique_violation (PK duplicada).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pet_intakes
		SET
			name = $2,
			species = $3,
			breed = $4,
			location = $5,
			age_months = $6,
			gender = $7,
			reason = $8,
			foster_duration = $9,
			justification = $10,
			contact_email = $11,
			contact_phone = $12,
			owner_name = $13,
			national_id = $14,
			photo_ref = $15,
			registration_status = $16,
			physical_status = $17,
			doctor_name = $18,
			doctor_status = $19,
			discount = $20,
			total_cost = $21,
			net_cost = $22,
			updated_at = now()
		WHERE id = $1
	`,
		p.ID,
		p.Name, p.Species, p.Breed, p.Location,
		p.AgeMonths, string(p.Gender), string(p.Reason),
		p.FosterDuration, p.Justification,
		p.ContactEmail, p.ContactPhone,
		p.OwnerName, p.NationalID, p.PhotoRef,
		p.RegistrationStatus, string(p.PhysicalStatus), p.DoctorName, p.DoctorStatus,
		p.Discount, p.TotalCost, p.NetCost,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pet_intakes WHERE id = $1`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+petColumns+` FROM pet_intakes ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pet_intakes WHERE id = $1`, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner cubre *sql.Row y *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var gender, reason, physical string
	if err := s.Scan(
		&p.ID,
		&p.Name, &p.Species, &p.Breed, &p.Location,
		&p.AgeMonths, &gender, &reason,
		&p.FosterDuration, &p.Justification,
		&p.ContactEmail, &p.ContactPhone,
		&p.OwnerName, &p.NationalID, &p.PhotoRef,
		&p.RegistrationStatus, &physical, &p.DoctorName, &p.DoctorStatus,
		&p.Discount, &p.TotalCost, &p.NetCost,
	); err != nil {
		return pets.Pet{}, err
	}
	p.Gender = pets.Gender(gender)
	p.Reason = pets.Reason(reason)
	p.PhysicalStatus = pets.PhysicalStatus(physical)
	return p, nil
}
