package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/hotelio/hotel_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDocumentCounterRepository allocates document sequence numbers from
// the document_counters table. The upsert increments atomically, so two
// concurrent allocations for the same scope never return the same value.
type PgxDocumentCounterRepository struct {
	db *pgxpool.Pool
}

// newPgxDocumentCounterRepository creates a new repository for document counters.
func newPgxDocumentCounterRepository(db *pgxpool.Pool) portsrepo.DocumentCounterRepository {
	return &PgxDocumentCounterRepository{db: db}
}

// Ensure PgxDocumentCounterRepository implements portsrepo.DocumentCounterRepository
var _ portsrepo.DocumentCounterRepository = (*PgxDocumentCounterRepository)(nil)

// NextSequence returns the next value for the given counter scope,
// creating the counter row on first use.
func (r *PgxDocumentCounterRepository) NextSequence(ctx context.Context, scope string) (int64, error) {
	query := `
		INSERT INTO document_counters (scope, last_value)
		VALUES ($1, 1)
		ON CONFLICT (scope) DO UPDATE SET
			last_value = document_counters.last_value + 1
		RETURNING last_value;
	`
	var value int64
	if err := r.db.QueryRow(ctx, query, scope).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to allocate sequence for scope %s: %w", scope, err)
	}
	return value, nil
}
