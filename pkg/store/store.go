// Package store persists layout documents under stable identifiers.
//
// Three backends are available:
//   - memory: in-process storage for development and testing
//   - file: one JSON file per document, for CLI usage
//   - mongo: MongoDB-backed storage for server deployments
//
// Documents are wrapped in a [Record] that carries a UUID and timestamps.
// All backends share [Store]; lookups for unknown IDs return an error with
// code DOCUMENT_NOT_FOUND.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/boxkit/pkg/doc"
)

// Record wraps a stored document with its identity and timestamps.
type Record struct {
	ID        string        `json:"id" bson:"_id"`
	Name      string        `json:"name,omitempty" bson:"name,omitempty"`
	Document  *doc.Document `json:"document" bson:"document"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}

// NewRecord wraps a document in a record with a fresh UUID.
// The record's name is taken from the document.
func NewRecord(d *doc.Document) *Record {
	now := time.Now().UTC()
	return &Record{
		ID:        uuid.NewString(),
		Name:      d.Name,
		Document:  d,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Store is the interface for document storage backends.
type Store interface {
	// Get retrieves a record by ID. Unknown IDs return an error with
	// code DOCUMENT_NOT_FOUND.
	Get(ctx context.Context, id string) (*Record, error)

	// Put stores a record, overwriting any record with the same ID.
	// UpdatedAt is refreshed on every call.
	Put(ctx context.Context, rec *Record) error

	// List returns all records ordered by creation time.
	List(ctx context.Context) ([]*Record, error)

	// Delete removes a record. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
