package repository

import (
	"context"

	"github.com/BruksfildServices01/vetclinic-api/internal/docstore"
)

// documents holds the CRUD shared by every collection-backed repository.
// idOf and setID bridge to the entity's id field.
type documents[T any] struct {
	coll  *docstore.Collection[T]
	idOf  func(*T) string
	setID func(*T, string)
}

func newDocuments[T any](
	store docstore.Store,
	name string,
	idOf func(*T) string,
	setID func(*T, string),
) documents[T] {
	return documents[T]{
		coll:  docstore.NewCollection[T](store, name),
		idOf:  idOf,
		setID: setID,
	}
}

func (d documents[T]) List(ctx context.Context) ([]T, error) {
	return d.coll.List(ctx)
}

func (d documents[T]) Get(ctx context.Context, id string) (*T, error) {
	return d.coll.Get(ctx, id)
}

// Create assigns a fresh id and inserts the document.
func (d documents[T]) Create(ctx context.Context, doc *T) error {
	d.setID(doc, docstore.NewID())
	return d.coll.Insert(ctx, d.idOf(doc), doc)
}

func (d documents[T]) Update(ctx context.Context, doc *T) error {
	return d.coll.Replace(ctx, d.idOf(doc), doc)
}

func (d documents[T]) Delete(ctx context.Context, id string) error {
	return d.coll.Delete(ctx, id)
}
