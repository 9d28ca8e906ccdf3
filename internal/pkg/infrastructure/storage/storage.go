package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows       = errors.New("no rows in result set")
	ErrStoreFailed  = errors.New("could not store data")
	ErrNoID         = errors.New("data contains no id")
	ErrAlreadyExist = errors.New("printer already exists")
	ErrDeleted      = errors.New("deleted")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS printers (
			printer_id		TEXT	NOT NULL,
			name			TEXT	NOT NULL,
			ip_address		TEXT	NOT NULL,
			model			TEXT	NULL,
			location		TEXT	NULL,
			snmp_community	TEXT	NULL,
			active			BOOLEAN	NOT NULL DEFAULT TRUE,
			status			TEXT	NOT NULL DEFAULT 'offline',
			last_polled		timestamp with time zone NULL,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			deleted			BOOLEAN DEFAULT FALSE,
			deleted_on		timestamp with time zone NULL,
			CONSTRAINT pkey_printers_unique PRIMARY KEY (printer_id, deleted)
		);

		CREATE TABLE IF NOT EXISTS printer_metrics (
			time			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			printer_id		TEXT	NOT NULL,
			cyan_level		NUMERIC NULL,
			magenta_level	NUMERIC NULL,
			yellow_level	NUMERIC NULL,
			black_level		NUMERIC NULL,
			toner_level		NUMERIC NULL,
			paper_tray_status	TEXT NULL,
			page_count		NUMERIC NOT NULL DEFAULT 0,
			device_status	TEXT NULL,
			printer_type	TEXT NOT NULL DEFAULT 'unknown',
			CONSTRAINT pkey_printer_metrics PRIMARY KEY (time, printer_id)
		);

		CREATE TABLE IF NOT EXISTS alerts (
			alert_id		TEXT	NOT NULL,
			printer_id		TEXT	NOT NULL,
			printer_name	TEXT	NOT NULL,
			alert_type		TEXT	NOT NULL,
			severity		TEXT	NOT NULL,
			message			TEXT	NULL,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			acknowledged	BOOLEAN	NOT NULL DEFAULT FALSE,
			acknowledged_by	TEXT	NULL,
			acknowledged_on	timestamp with time zone NULL,
			CONSTRAINT pkey_alerts PRIMARY KEY (alert_id)
		);

		CREATE INDEX IF NOT EXISTS idx_alerts_dedup ON alerts (printer_id, alert_type, acknowledged, created_on);
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}
