// internal/storage/postgres.go
package storage

import (
    "database/sql"
    "fmt"
    "log"
    "os"

    _ "github.com/lib/pq"
)

// PostgresNamespace stores slots in a single campaign_slots table. It is the
// alternate backend behind the same Namespace contract as the filesystem.
type PostgresNamespace struct {
    DB *sql.DB
}

// OpenDB connects to Postgres using the DB_* environment variables.
func OpenDB() *sql.DB {
    user := os.Getenv("DB_USER")
    pass := os.Getenv("DB_PASSWORD")
    host := os.Getenv("DB_HOST")
    port := os.Getenv("DB_PORT")
    name := os.Getenv("DB_NAME")

    dsn := fmt.Sprintf(
        "postgres://%s:%s@%s:%s/%s?sslmode=disable",
        user, pass, host, port, name,
    )

    db, err := sql.Open("postgres", dsn)
    if err != nil {
        log.Fatalf("failed to connect to DB: %v", err)
    }

    if err = db.Ping(); err != nil {
        log.Fatalf("failed to ping DB: %v", err)
    }

    log.Println("✅ Connected to database")
    return db
}

// EnsureSchema creates the slot table if it does not exist.
func (n *PostgresNamespace) EnsureSchema() error {
    _, err := n.DB.Exec(`
        CREATE TABLE IF NOT EXISTS campaign_slots (
            name        TEXT PRIMARY KEY,
            data        BYTEA NOT NULL,
            updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )
    `)
    return err
}

func (n *PostgresNamespace) List() ([]string, error) {
    rows, err := n.DB.Query(`SELECT name FROM campaign_slots`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    names := []string{}
    for rows.Next() {
        var name string
        if err := rows.Scan(&name); err != nil {
            return nil, err
        }
        names = append(names, name)
    }
    return names, rows.Err()
}

func (n *PostgresNamespace) Read(name string) ([]byte, error) {
    var data []byte
    err := n.DB.QueryRow(`SELECT data FROM campaign_slots WHERE name=$1`, name).Scan(&data)
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, ErrSlotNotFound
        }
        return nil, err
    }
    return data, nil
}

func (n *PostgresNamespace) Write(name string, data []byte) error {
    query := `
        INSERT INTO campaign_slots (name, data, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (name) DO UPDATE SET data=$2, updated_at=NOW()
    `
    _, err := n.DB.Exec(query, name, data)
    return err
}

func (n *PostgresNamespace) Delete(name string) error {
    res, err := n.DB.Exec(`DELETE FROM campaign_slots WHERE name=$1`, name)
    if err != nil {
        return err
    }
    affected, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if affected == 0 {
        return ErrSlotNotFound
    }
    return nil
}

var _ Namespace = (*PostgresNamespace)(nil)
