package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/retail-pos/internal/config"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schema string

type Repository struct {
	DB *sql.DB
}

type Repositories struct {
	Postgres     *Repository
	Product      ProductRepository
	Sale         SaleRepository
	User         UserRepository
	Profile      ProfileRepository
	Notification NotificationRepository
}

// Open returns an instrumented connection pool that has answered a ping.
func Open(cfg *config.Database) (*sql.DB, error) {

	db, err := otelsql.Open("postgres", cfg.GetDSN(), otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func New(cfg *config.Config) (*Repositories, error) {

	db, err := Open(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := Migrate(context.Background(), db); err != nil {
			db.Close()
			return nil, err
		}
		slog.Info("Database schema is up to date")
	}

	return NewRepositories(db), nil
}

func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Postgres:     &Repository{DB: db},
		Product:      NewProductRepo(db),
		Sale:         NewSaleRepo(db),
		User:         NewUserRepo(db),
		Profile:      NewProfileRepo(db),
		Notification: NewNotificationRepo(db),
	}
}

// Migrate applies the idempotent schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
