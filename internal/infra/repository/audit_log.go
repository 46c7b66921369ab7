package repository

import (
	"context"

	"github.com/BruksfildServices01/vetclinic-api/internal/docstore"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

const maxAuditLogLimit = 200

type AuditLogFilter struct {
	Action string
	Entity string
	Page   int
	Limit  int
}

type AuditLogRepository struct {
	logs *docstore.Collection[models.AuditLog]
}

func NewAuditLogRepository(store docstore.Store) *AuditLogRepository {
	return &AuditLogRepository{
		logs: docstore.NewCollection[models.AuditLog](store, docstore.CollectionAuditLogs),
	}
}

// Query filters by action and entity, newest first, and returns one page
// together with the filtered total.
func (r *AuditLogRepository) Query(ctx context.Context, f AuditLogFilter) ([]models.AuditLog, int, error) {
	all, err := r.logs.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	// List is in insertion order; walk it backwards for newest first.
	matched := make([]models.AuditLog, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		l := all[i]
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		matched = append(matched, l)
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 50
	}
	if f.Limit > maxAuditLogLimit {
		f.Limit = maxAuditLogLimit
	}

	total := len(matched)
	// Compare page counts before multiplying; a huge page would overflow.
	pages := (total + f.Limit - 1) / f.Limit
	if f.Page > pages {
		return []models.AuditLog{}, total, nil
	}
	offset := (f.Page - 1) * f.Limit
	end := offset + f.Limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}
