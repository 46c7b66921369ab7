package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Collection is a typed view over one collection of a Store.
type Collection[T any] struct {
	store Store
	name  string
}

func NewCollection[T any](store Store, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

func NewID() string {
	return uuid.NewString()
}

func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	raw, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		return nil, err
	}

	var doc T
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", c.name, id, err)
	}
	return &doc, nil
}

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	raws, err := c.store.List(ctx, c.name)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var doc T
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", c.name, err)
		}
		out = append(out, doc)
	}
	return out, nil
}

// FindOne scans the collection and returns the first document accepted by
// match, or ErrNotFound.
func (c *Collection[T]) FindOne(ctx context.Context, match func(*T) bool) (*T, error) {
	docs, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if match(&docs[i]) {
			return &docs[i], nil
		}
	}
	return nil, ErrNotFound
}

func (c *Collection[T]) Insert(ctx context.Context, id string, doc *T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", c.name, id, err)
	}
	return c.store.Insert(ctx, c.name, id, raw)
}

func (c *Collection[T]) Replace(ctx context.Context, id string, doc *T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", c.name, id, err)
	}
	return c.store.Replace(ctx, c.name, id, raw)
}

func (c *Collection[T]) Put(ctx context.Context, id string, doc *T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", c.name, id, err)
	}
	return c.store.Put(ctx, c.name, id, raw)
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.store.Delete(ctx, c.name, id)
}
