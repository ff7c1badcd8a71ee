package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store on top of Postgres, persisting every
// collection as JSONB rows of a single documents table. It exists so the
// service can run against a relational deployment without the domain layer
// knowing; the engine-neutral Store contract is the only surface.
type PostgresStore struct {
	db *pgxpool.Pool
}

const createDocumentsTable = `
	CREATE TABLE IF NOT EXISTS documents (
		id UUID PRIMARY KEY,
		collection TEXT NOT NULL,
		doc JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS documents_collection_idx ON documents (collection);
	CREATE INDEX IF NOT EXISTS documents_doc_idx ON documents USING GIN (doc jsonb_path_ops);`

// NewPostgresStore connects to Postgres and ensures the documents table exists
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, createDocumentsTable); err != nil {
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}

	return &PostgresStore{db: pool}, nil
}

// Insert stores a document and returns its generated UUID as a string
func (s *PostgresStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	id := uuid.New()
	query := `INSERT INTO documents (id, collection, doc) VALUES ($1, $2, $3::jsonb)`
	if _, err := s.db.Exec(ctx, query, id, collection, string(body)); err != nil {
		return "", err
	}
	return id.String(), nil
}

// FindOne decodes the first matching document into out
func (s *PostgresStore) FindOne(ctx context.Context, collection string, filter Filter, out interface{}) error {
	query, args, err := s.buildWhere(`SELECT id, doc FROM documents`, collection, filter)
	if err != nil {
		return err
	}
	query += ` ORDER BY created_at LIMIT 1`

	var id uuid.UUID
	var body []byte
	err = s.db.QueryRow(ctx, query, args...).Scan(&id, &body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if out == nil {
		return nil
	}
	return decodeJSONDocument(id.String(), body, out)
}

// Find returns up to limit matching documents with identifiers under "_id"
func (s *PostgresStore) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	query, args, err := s.buildWhere(`SELECT id, doc FROM documents`, collection, filter)
	if err != nil {
		return nil, err
	}
	query += ` ORDER BY created_at`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]Document, 0)
	for rows.Next() {
		var id uuid.UUID
		var body []byte
		if err := rows.Scan(&id, &body); err != nil {
			return nil, err
		}

		doc := Document{}
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, err
		}
		doc["_id"] = id.String()
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// Update merges set into the first matching document
func (s *PostgresStore) Update(ctx context.Context, collection string, filter Filter, set Filter) (int64, error) {
	patch, err := json.Marshal(set)
	if err != nil {
		return 0, err
	}

	sub, args, err := s.buildWhere(`SELECT id FROM documents`, collection, filter)
	if err != nil {
		return 0, err
	}
	sub += ` ORDER BY created_at LIMIT 1`

	args = append(args, string(patch))
	query := fmt.Sprintf(
		`UPDATE documents SET doc = doc || $%d::jsonb WHERE id IN (%s)`,
		len(args), sub,
	)

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Collections lists the distinct collection names seen so far
func (s *PostgresStore) Collections(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Ping checks connectivity
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close releases the pool
func (s *PostgresStore) Close(ctx context.Context) {
	s.db.Close()
}

// buildWhere renders the engine-neutral filter as SQL, mapping "_id" to the
// id column and the remaining keys to a JSONB containment check
func (s *PostgresStore) buildWhere(base, collection string, filter Filter) (string, []interface{}, error) {
	query := base + ` WHERE collection = $1`
	args := []interface{}{collection}

	rest := make(map[string]interface{})
	for k, v := range filter {
		if k == "_id" {
			idStr, ok := v.(string)
			if !ok {
				return "", nil, ErrInvalidID
			}
			id, err := uuid.Parse(idStr)
			if err != nil {
				return "", nil, ErrInvalidID
			}
			args = append(args, id)
			query += fmt.Sprintf(` AND id = $%d`, len(args))
			continue
		}
		rest[k] = v
	}

	if len(rest) > 0 {
		match, err := json.Marshal(rest)
		if err != nil {
			return "", nil, err
		}
		args = append(args, string(match))
		query += fmt.Sprintf(` AND doc @> $%d::jsonb`, len(args))
	}

	return query, args, nil
}

// decodeJSONDocument re-encodes a stored JSON document into a typed struct,
// injecting the row identifier under the "id" field
func decodeJSONDocument(id string, body []byte, out interface{}) error {
	doc := map[string]interface{}{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return err
	}
	doc["id"] = id

	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
