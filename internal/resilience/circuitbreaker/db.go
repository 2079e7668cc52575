package circuitbreaker

import (
	"context"
	"database/sql"
	"time"
)

// DBConfig is the breaker behind the readiness probe. Five failed pings in a
// row within a minute open it; it probes the database again after 30s.
func DBConfig() Config {
	return Config{
		Name:             "database",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0,
		MinRequests:      5,
	}
}

// DBPinger pings the database through a breaker, so probes against a dead
// database fail fast instead of each waiting for a connect timeout.
type DBPinger struct {
	cb *CircuitBreaker
	db *sql.DB
}

// NewDBPinger wraps db with the DBConfig breaker.
func NewDBPinger(db *sql.DB) *DBPinger {
	return NewDBPingerWithConfig(db, DBConfig())
}

// NewDBPingerWithConfig wraps db with a breaker built from cfg.
func NewDBPingerWithConfig(db *sql.DB, cfg Config) *DBPinger {
	return &DBPinger{cb: New(cfg), db: db}
}

// PingContext returns gobreaker.ErrOpenState while the breaker is open.
func (p *DBPinger) PingContext(ctx context.Context) error {
	_, err := Call(p.cb, func() (struct{}, error) {
		return struct{}{}, p.db.PingContext(ctx)
	})
	return err
}

// Breaker exposes the breaker for health reporting.
func (p *DBPinger) Breaker() *CircuitBreaker {
	return p.cb
}
