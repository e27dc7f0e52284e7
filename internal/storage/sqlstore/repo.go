package sqlstore

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"realty_listings/internal/adapters/observability"
	"realty_listings/internal/domain"
)

//go:embed schema.sql
var schema string

func init() {
	// modernc registers itself as "sqlite"; make named queries use ? for it too
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

type propertyRow struct {
	ID               string  `db:"id"`
	Title            string  `db:"title"`
	Description      string  `db:"description"`
	Location         string  `db:"location"`
	Country          string  `db:"country"`
	StateName        string  `db:"state_name"`
	City             string  `db:"city"`
	Price            float64 `db:"price"`
	Bedrooms         int     `db:"bedrooms"`
	PropertyType     string  `db:"property_type"`
	CategoryType     string  `db:"category_type"`
	Square           float64 `db:"square"`
	Images           string  `db:"images"`    // JSON array
	Amenities        string  `db:"amenities"` // JSON array
	Rating           float64 `db:"rating"`
	VideoURL         string  `db:"video_url"`
	BrochureURL      string  `db:"brochure_url"`
	BrochureFileName string  `db:"brochure_file_name"`
	CreatedAt        int64   `db:"created_at"` // unix millis
}

func toRow(p domain.Property) propertyRow {
	imgs, _ := json.Marshal(nonNil(p.Images))
	amen, _ := json.Marshal(nonNil(p.Amenities))
	return propertyRow{
		ID:               p.ID,
		Title:            p.Title,
		Description:      p.Description,
		Location:         p.Location,
		Country:          p.Country,
		StateName:        p.StateName,
		City:             p.City,
		Price:            p.Price,
		Bedrooms:         p.Bedrooms,
		PropertyType:     p.PropertyType,
		CategoryType:     p.CategoryType,
		Square:           p.Square,
		Images:           string(imgs),
		Amenities:        string(amen),
		Rating:           p.Rating,
		VideoURL:         p.VideoURL,
		BrochureURL:      p.BrochureURL,
		BrochureFileName: p.BrochureFileName,
		CreatedAt:        p.CreatedAt.UnixMilli(),
	}
}

func (r propertyRow) toDomain() domain.Property {
	p := domain.Property{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		Location:         r.Location,
		Country:          r.Country,
		StateName:        r.StateName,
		City:             r.City,
		Price:            r.Price,
		Bedrooms:         r.Bedrooms,
		PropertyType:     r.PropertyType,
		CategoryType:     r.CategoryType,
		Square:           r.Square,
		Rating:           r.Rating,
		VideoURL:         r.VideoURL,
		BrochureURL:      r.BrochureURL,
		BrochureFileName: r.BrochureFileName,
		CreatedAt:        time.UnixMilli(r.CreatedAt).UTC(),
	}
	_ = json.Unmarshal([]byte(r.Images), &p.Images)
	_ = json.Unmarshal([]byte(r.Amenities), &p.Amenities)
	p.Images, p.Amenities = nonNil(p.Images), nonNil(p.Amenities)
	return p
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type Repo struct {
	db      *sqlx.DB
	backend string
}

// New wraps an open connection; driver is the sqlx driver name ("mysql" or "sqlite").
func New(db *sqlx.DB, driver string) *Repo { return &Repo{db: db, backend: driver} }

// Open connects, pings and applies the embedded schema.
func Open(ctx context.Context, driver, dsn string) (*Repo, error) {
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	if driver == "sqlite" {
		// one writer; also keeps a :memory: database alive across calls
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("configure sqlite: %w", err)
		}
	}
	r := New(db, driver)
	if err := r.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func (r *Repo) Migrate(ctx context.Context) error {
	// single statement; no multiStatements needed on MySQL
	stmt := strings.TrimSuffix(strings.TrimSpace(schema), ";")
	if _, err := r.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (r *Repo) Close() error { return r.db.Close() }

func (r *Repo) Insert(ctx context.Context, p domain.Property) (err error) {
	defer r.observe("insert", time.Now(), &err)
	_, err = r.db.NamedExecContext(ctx, insertPropertySQL, toRow(p))
	return err
}

func (r *Repo) Replace(ctx context.Context, p domain.Property) (err error) {
	defer r.observe("replace", time.Now(), &err)
	res, err := r.db.NamedExecContext(ctx, replacePropertySQL, toRow(p))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	// MySQL reports 0 affected rows for a no-op update, so check existence explicitly
	var one int
	if err := r.db.GetContext(ctx, &one, `SELECT 1 FROM properties WHERE id = ?`, p.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ domain.Property, err error) {
	defer r.observe("get", time.Now(), &err)
	var row propertyRow
	if err := r.db.GetContext(ctx, &row, getPropertySQL, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Property{}, domain.ErrNotFound
		}
		return domain.Property{}, err
	}
	return row.toDomain(), nil
}

func (r *Repo) Find(ctx context.Context, q domain.Query, limit int) (_ []domain.Property, err error) {
	defer r.observe("find", time.Now(), &err)
	where, args, err := whereClause(q, lowerFunc(r.backend))
	if err != nil {
		return nil, err
	}
	args = append(args, limit)

	var rows []propertyRow
	if err := r.db.SelectContext(ctx, &rows, findPropertiesSQL+where+" LIMIT ?", args...); err != nil {
		return nil, fmt.Errorf("select properties: %w", err)
	}
	out := make([]domain.Property, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *Repo) observe(op string, start time.Time, err *error) {
	e := *err
	if errors.Is(e, domain.ErrNotFound) {
		e = nil
	}
	observability.ObserveStore(r.backend, op, e, time.Since(start))
}
