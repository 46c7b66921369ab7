package docstore

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("docstore: document not found")
	ErrConflict = errors.New("docstore: document already exists")
)

// Store persists schemaless JSON documents grouped in named collections and
// addressed by opaque string ids. Every method is a single-document
// operation; callers combining several calls get no atomicity across them.
type Store interface {
	Get(ctx context.Context, collection, id string) ([]byte, error)

	// List returns the documents of a collection in insertion order.
	List(ctx context.Context, collection string) ([][]byte, error)

	Insert(ctx context.Context, collection, id string, doc []byte) error

	// Replace overwrites an existing document and fails with ErrNotFound
	// when the id is absent.
	Replace(ctx context.Context, collection, id string, doc []byte) error

	Put(ctx context.Context, collection, id string, doc []byte) error

	Delete(ctx context.Context, collection, id string) error

	Close() error
}

const (
	CollectionProducts            = "products"
	CollectionUsers               = "users"
	CollectionPatients            = "patients"
	CollectionAppointments        = "appointments"
	CollectionAppointmentRequests = "appointment_requests"
	CollectionCarts               = "carts"
	CollectionOrders              = "orders"
	CollectionSettings            = "settings"
	CollectionAuditLogs           = "audit_logs"
)
