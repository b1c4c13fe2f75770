package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const pgUniqueViolation = "23505"

// Postgres implements Store over a pgx connection pool. The pool is safe for
// concurrent use; write ordering and uniqueness are delegated to the database.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects a pool, verifies the connection, and runs pending
// migrations.
func NewPostgres(ctx context.Context, cfg Config) (*Postgres, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("store: parse dsn: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	if err := runMigrations(ctx, cfg.DSN); err != nil {
		pool.Close()
		return nil, err
	}

	return &Postgres{pool: pool}, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

func (p *Postgres) CreateUser(ctx context.Context, email, passwordHash string) (*User, error) {
	user := &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
	}

	query := `INSERT INTO users (id, email, password_hash)
	          VALUES ($1, $2, $3)
	          RETURNING created_at, updated_at`

	err := p.pool.QueryRow(ctx, query, user.ID, user.Email, user.PasswordHash).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("store: create user: %w", err)
	}

	return user, nil
}

func (p *Postgres) UserByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, email, password_hash, llm_api_key, created_at, updated_at
	          FROM users WHERE email = $1`
	return p.scanUser(p.pool.QueryRow(ctx, query, email))
}

func (p *Postgres) UserByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT id, email, password_hash, llm_api_key, created_at, updated_at
	          FROM users WHERE id = $1`
	return p.scanUser(p.pool.QueryRow(ctx, query, id))
}

// scanUser maps a users row into a User, failing fast on unexpected shapes.
func (p *Postgres) scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	var llmKey *string

	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &llmKey,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: scan user: %w", err)
	}
	if llmKey != nil {
		user.LLMAPIKey = *llmKey
	}
	return user, nil
}

func (p *Postgres) SetLLMKey(ctx context.Context, userID, key string) error {
	query := `UPDATE users
	          SET llm_api_key = $2, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $1`

	tag, err := p.pool.Exec(ctx, query, userID, key)
	if err != nil {
		return fmt.Errorf("store: set llm key: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) AddTransformation(ctx context.Context, t *Transformation) error {
	t.ID = uuid.New().String()

	query := `INSERT INTO transformations (id, user_id, command, selected_text, transformed_text)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING created_at`

	err := p.pool.QueryRow(ctx, query,
		t.ID, t.UserID, t.Command, t.SelectedText, t.TransformedText).
		Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("store: add transformation: %w", err)
	}
	return nil
}

func (p *Postgres) TransformationStats(ctx context.Context, userID string) (*Stats, error) {
	stats := &Stats{}

	countQuery := `SELECT COUNT(*) FROM transformations WHERE user_id = $1`
	if err := p.pool.QueryRow(ctx, countQuery, userID).Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("store: count transformations: %w", err)
	}

	recentQuery := `SELECT id, user_id, command, selected_text, transformed_text, created_at
	                FROM transformations
	                WHERE user_id = $1
	                ORDER BY created_at DESC
	                LIMIT 5`

	rows, err := p.pool.Query(ctx, recentQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("store: recent transformations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t Transformation
		err := rows.Scan(&t.ID, &t.UserID, &t.Command, &t.SelectedText,
			&t.TransformedText, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("store: scan transformation: %w", err)
		}
		stats.Recent = append(stats.Recent, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: recent transformations: %w", err)
	}

	return stats, nil
}
