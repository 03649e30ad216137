package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DB is the SQLite handle with pooling and prepared statements.
type DB struct {
	*sql.DB
	pool     *ConnectionPool
	prepared map[string]*sql.Stmt
	mutex    sync.RWMutex
}

// ConnectionPool manages database connection pooling.
type ConnectionPool struct {
	db           *sql.DB
	maxOpenConns int
	maxIdleConns int
	maxLifetime  time.Duration
}

// NewConnectionPool configures pooling on an open handle.
func NewConnectionPool(db *sql.DB, maxOpen, maxIdle int, maxLifetime time.Duration) *ConnectionPool {
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)

	return &ConnectionPool{
		db:           db,
		maxOpenConns: maxOpen,
		maxIdleConns: maxIdle,
		maxLifetime:  maxLifetime,
	}
}

// GetStats returns connection pool statistics.
func (cp *ConnectionPool) GetStats() map[string]interface{} {
	stats := cp.db.Stats()

	return map[string]interface{}{
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"max_open_connections": cp.maxOpenConns,
		"max_idle_connections": cp.maxIdleConns,
		"max_lifetime_seconds": cp.maxLifetime.Seconds(),
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
		"max_idle_closed":      stats.MaxIdleClosed,
		"max_lifetime_closed":  stats.MaxLifetimeClosed,
	}
}

// NewDB opens (creating if needed) the scoring database under dataDir.
func NewDB(dataDir string) (*DB, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "altscore.db")

	connStr := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)", dbPath)

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	pool := NewConnectionPool(db, 25, 5, 5*time.Minute)

	database := &DB{
		DB:       db,
		pool:     pool,
		prepared: make(map[string]*sql.Stmt),
	}

	if err := database.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := database.initPreparedStatements(); err != nil {
		return nil, fmt.Errorf("failed to initialize prepared statements: %w", err)
	}

	slog.Info("Database initialized with connection pooling",
		"path", dbPath,
		"max_open_conns", pool.maxOpenConns,
		"max_idle_conns", pool.maxIdleConns,
		"max_lifetime", pool.maxLifetime)

	return database, nil
}

// migrate creates the applicant and assessment tables.
func (db *DB) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS applicants (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			age INTEGER DEFAULT 0,
			city TEXT DEFAULT '',
			state TEXT DEFAULT '',
			phone TEXT NOT NULL,
			email TEXT,
			ip_address TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS assessments (
			id TEXT PRIMARY KEY,
			applicant_id TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			essential_info TEXT, -- JSON EssentialInfo
			input TEXT,          -- JSON scoring input (facts + answers)
			result TEXT,         -- JSON full score breakdown
			final_score REAL DEFAULT 0,
			category TEXT DEFAULT '',
			traditional_score REAL DEFAULT 0,
			psychometric_score REAL DEFAULT 0,
			ai_score REAL DEFAULT 0,
			ai_fallback BOOLEAN DEFAULT FALSE,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			completed_at DATETIME,
			FOREIGN KEY (applicant_id) REFERENCES applicants(id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_applicants_phone ON applicants(phone)`,
		`CREATE INDEX IF NOT EXISTS idx_assessments_applicant ON assessments(applicant_id)`,
		`CREATE INDEX IF NOT EXISTS idx_assessments_status ON assessments(status)`,
		`CREATE INDEX IF NOT EXISTS idx_assessments_completed ON assessments(completed_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_assessments_score ON assessments(final_score DESC)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}

	return nil
}

// initPreparedStatements prepares the hot-path queries.
func (db *DB) initPreparedStatements() error {
	statements := map[string]string{
		"insert_applicant": `INSERT INTO applicants (id, name, age, city, state, phone, email, ip_address, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,

		"get_applicant": `SELECT id, name, age, city, state, phone, email, ip_address, created_at, updated_at
			FROM applicants WHERE id = ?`,

		"insert_assessment": `INSERT INTO assessments (
			id, applicant_id, status, essential_info, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?)`,

		"get_assessment": `SELECT id, applicant_id, status, essential_info, input, result,
			final_score, category, traditional_score, psychometric_score, ai_score,
			ai_fallback, created_at, updated_at, completed_at
			FROM assessments WHERE id = ?`,

		"complete_assessment": `UPDATE assessments SET
			status = ?, input = ?, result = ?, final_score = ?, category = ?,
			traditional_score = ?, psychometric_score = ?, ai_score = ?,
			ai_fallback = ?, updated_at = ?, completed_at = ?
			WHERE id = ?`,

		"count_completed_today": `SELECT COUNT(*) FROM assessments
			WHERE applicant_id = ? AND completed_at >= ?`,
	}

	db.mutex.Lock()
	defer db.mutex.Unlock()

	for name, query := range statements {
		stmt, err := db.Prepare(query)
		if err != nil {
			return fmt.Errorf("failed to prepare statement %s: %w", name, err)
		}
		db.prepared[name] = stmt
	}

	return nil
}

// GetPreparedStatement retrieves a prepared statement by name.
func (db *DB) GetPreparedStatement(name string) (*sql.Stmt, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	stmt, exists := db.prepared[name]
	if !exists {
		return nil, fmt.Errorf("prepared statement %s not found", name)
	}
	return stmt, nil
}

// GetPoolStats returns database connection pool statistics.
func (db *DB) GetPoolStats() map[string]interface{} {
	return db.pool.GetStats()
}

// Close closes the prepared statements and the connection.
func (db *DB) Close() error {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	for name, stmt := range db.prepared {
		if err := stmt.Close(); err != nil {
			slog.Warn("Failed to close prepared statement", "name", name, "error", err)
		}
	}
	db.prepared = make(map[string]*sql.Stmt)

	return db.DB.Close()
}
