package archive

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/diillson/campus-energy-dashboard-go/internal/domain/entity"
	"github.com/diillson/campus-energy-dashboard-go/internal/domain/repository"
)

const timestampLayout = "2006-01-02 15:04:05"

// ArchiveRepositoryImpl guarda as leituras limpas em um banco SQLite local,
// acumulando histórico entre execuções do pipeline.
type ArchiveRepositoryImpl struct {
	conn *sql.DB
}

// New abre (ou cria) o banco de arquivo e inicializa o schema.
func New(dbPath string) (repository.ArchiveRepository, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}

	repo := &ArchiveRepositoryImpl{conn: conn}
	if err := repo.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing archive schema: %w", err)
	}

	return repo, nil
}

func (r *ArchiveRepositoryImpl) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS readings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		building TEXT NOT NULL,
		kwh REAL NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE(timestamp, building)
	);
	CREATE INDEX IF NOT EXISTS idx_readings_building ON readings(building);
	CREATE INDEX IF NOT EXISTS idx_readings_timestamp ON readings(timestamp);
	`
	_, err := r.conn.Exec(schema)
	return err
}

// InsertReadings insere as leituras, ignorando duplicatas (mesmo timestamp
// e prédio). Retorna quantas linhas foram de fato inseridas.
func (r *ArchiveRepositoryImpl) InsertReadings(readings []entity.Reading) (int, error) {
	tx, err := r.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning archive transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
	INSERT OR IGNORE INTO readings (timestamp, building, kwh, created_at)
	VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing archive insert: %w", err)
	}
	defer stmt.Close()

	createdAt := time.Now().UTC().Format(time.RFC3339)

	inserted := 0
	for _, reading := range readings {
		result, err := stmt.Exec(
			reading.Timestamp.Format(timestampLayout),
			reading.Building,
			reading.KWh,
			createdAt,
		)
		if err != nil {
			return inserted, fmt.Errorf("inserting reading: %w", err)
		}
		if n, err := result.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("committing archive transaction: %w", err)
	}
	return inserted, nil
}

// CountReadings retorna o total de leituras arquivadas.
func (r *ArchiveRepositoryImpl) CountReadings() (int, error) {
	var count int
	if err := r.conn.QueryRow(`SELECT COUNT(*) FROM readings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting archived readings: %w", err)
	}
	return count, nil
}

// Close fecha a conexão com o banco.
func (r *ArchiveRepositoryImpl) Close() error {
	return r.conn.Close()
}
