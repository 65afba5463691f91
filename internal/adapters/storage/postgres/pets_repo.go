package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"furiends-pets/internal/domain/pets"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const uniqueViolation = "23505"

const petColumns = `
	id, organization_id,
	name, species, breed, sex,
	age_months, size, color, description,
	image_urls, is_published, is_adopted,
	created_at, last_update_time`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		p.ID,
		p.OrganizationID,
		p.Name,
		string(p.Species),
		p.Breed,
		string(p.Sex),
		p.AgeMonths,
		string(p.Size),
		p.Color,
		p.Description,
		imageURLs(p.ImageURLs),
		p.IsPublished,
		p.IsAdopted,
		p.CreatedAt,
		p.LastUpdateTime,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pets.ErrConflict
	}
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			organization_id = $2,
			name = $3,
			species = $4,
			breed = $5,
			sex = $6,
			age_months = $7,
			size = $8,
			color = $9,
			description = $10,
			image_urls = $11,
			is_published = $12,
			is_adopted = $13,
			last_update_time = $14
		WHERE id = $1
	`,
		p.ID,
		p.OrganizationID,
		p.Name,
		string(p.Species),
		p.Breed,
		string(p.Sex),
		p.AgeMonths,
		string(p.Size),
		p.Color,
		p.Description,
		imageURLs(p.ImageURLs),
		p.IsPublished,
		p.IsAdopted,
		p.LastUpdateTime,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)

	p, err := scanPet(row.Scan, pgtype.NewMap())
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, pets.ErrNotFound
	}
	if err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context, f pets.Filter) ([]pets.Pet, error) {
	query, args := buildListQuery(f)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := pgtype.NewMap()
	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows.Scan, m)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

// buildListQuery traduce el filtro a SQL con parámetros posicionales.
func buildListQuery(f pets.Filter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.OrganizationID != nil {
		add("organization_id = $%d", *f.OrganizationID)
	}
	if f.Published != nil {
		add("is_published = $%d", *f.Published)
	}
	if f.Adopted != nil {
		add("is_adopted = $%d", *f.Adopted)
	}

	var b strings.Builder
	b.WriteString("SELECT " + petColumns + " FROM pets")
	if len(where) > 0 {
		b.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	switch f.Order {
	case pets.OrderUpdatedDesc:
		b.WriteString(" ORDER BY last_update_time DESC, id ASC")
	default:
		b.WriteString(" ORDER BY created_at ASC, id ASC")
	}

	return b.String(), args
}

func scanPet(scan func(dest ...any) error, m *pgtype.Map) (pets.Pet, error) {
	var (
		p                  pets.Pet
		species, sex, size string
		urls               []string
	)
	if err := scan(
		&p.ID,
		&p.OrganizationID,
		&p.Name,
		&species,
		&p.Breed,
		&sex,
		&p.AgeMonths,
		&size,
		&p.Color,
		&p.Description,
		m.SQLScanner(&urls),
		&p.IsPublished,
		&p.IsAdopted,
		&p.CreatedAt,
		&p.LastUpdateTime,
	); err != nil {
		return pets.Pet{}, err
	}

	p.Species = pets.Species(species)
	p.Sex = pets.Sex(sex)
	p.Size = pets.Size(size)
	p.ImageURLs = imageURLs(urls)
	return p, nil
}

// image_urls es NOT NULL; nil se guarda como array vacío.
func imageURLs(urls []string) []string {
	if urls == nil {
		return []string{}
	}
	return urls
}
