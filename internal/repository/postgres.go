package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// PostgresSubscribers is the PostgreSQL-backed Subscribers implementation.
type PostgresSubscribers struct {
	pool *pgxpool.Pool
}

// NewPostgresSubscribers creates a store over the given connection pool.
func NewPostgresSubscribers(pool *pgxpool.Pool) *PostgresSubscribers {
	return &PostgresSubscribers{pool: pool}
}

func (p *PostgresSubscribers) Insert(ctx context.Context, sub NewSubscriber) (Subscriber, error) {
	stored := Subscriber{
		ID:           uuid.New(),
		Email:        sub.Email,
		Name:         sub.Name,
		SubscribedAt: time.Now().UTC(),
	}

	_, err := p.pool.Exec(ctx,
		`INSERT INTO subscriptions (id, email, name, subscribed_at) VALUES ($1, $2, $3, $4)`,
		stored.ID, stored.Email, stored.Name, stored.SubscribedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return Subscriber{}, ErrDuplicateEmail
		}
		return Subscriber{}, err
	}

	return stored, nil
}

func (p *PostgresSubscribers) GetByEmail(ctx context.Context, email string) (Subscriber, error) {
	var stored Subscriber
	err := p.pool.QueryRow(ctx,
		`SELECT id, email, name, subscribed_at FROM subscriptions WHERE email = $1`,
		email,
	).Scan(&stored.ID, &stored.Email, &stored.Name, &stored.SubscribedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Subscriber{}, ErrNotFound
		}
		return Subscriber{}, err
	}
	return stored, nil
}
