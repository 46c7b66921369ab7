package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/vetclinic-api/internal/docstore"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

type Logger struct {
	logs *docstore.Collection[models.AuditLog]
}

func New(store docstore.Store) *Logger {
	return &Logger{
		logs: docstore.NewCollection[models.AuditLog](store, docstore.CollectionAuditLogs),
	}
}

func (l *Logger) Log(
	ctx context.Context,
	userID string,
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ID:        docstore.NewID(),
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}

	return l.logs.Insert(ctx, entry.ID, &entry)
}
