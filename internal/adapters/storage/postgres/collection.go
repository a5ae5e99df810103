package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Collection implementa el contrato load-all / replace-all sobre una
// tabla de filas (pos, doc jsonb). A diferencia del backend de archivos,
// ReplaceAll corre en una transacción, así que este backend no tiene la
// carrera del último escritor dentro de un mismo reemplazo; la carrera
// entre secuencias load→mutate→replace sigue existiendo igual que en
// el diseño heredado.
type Collection[T any] struct {
	db    *sql.DB
	table string // viene de constantes internas, nunca de input
}

func NewCollection[T any](db *sql.DB, table string) *Collection[T] {
	return &Collection[T]{db: db, table: table}
}

// EnsureSchema crea las tablas de colección si no existen.
func EnsureSchema(ctx context.Context, db *sql.DB, tables ...string) error {
	for _, t := range tables {
		_, err := db.ExecContext(ctx, fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				pos integer PRIMARY KEY,
				doc jsonb NOT NULL
			)
		`, t))
		if err != nil {
			return fmt.Errorf("ensure table %s: %w", t, err)
		}
	}
	return nil
}

func (c *Collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT doc FROM %s ORDER BY pos ASC
	`, c.table))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.table, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("load %s: %w", c.table, err)
		}
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("decode %s: %w", c.table, err)
		}
		out = append(out, item)
	}

	return out, rows.Err()
}

func (c *Collection[T]) ReplaceAll(ctx context.Context, items []T) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace %s: %w", c.table, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, c.table)); err != nil {
		return fmt.Errorf("replace %s: %w", c.table, err)
	}

	for i, item := range items {
		doc, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encode %s: %w", c.table, err)
		}
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`
			INSERT INTO %s (pos, doc) VALUES ($1, $2)
		`, c.table), i, doc); err != nil {
			return fmt.Errorf("replace %s: %w", c.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace %s: %w", c.table, err)
	}
	return nil
}
