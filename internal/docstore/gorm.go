package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

const pgUniqueViolation = "23505"

// GormStore keeps documents in the Postgres "documents" table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, collection, id string) ([]byte, error) {
	var doc models.Document
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("gorm get %s/%s: %w", collection, id, err)
	}
	return []byte(doc.Body), nil
}

func (s *GormStore) List(ctx context.Context, collection string) ([][]byte, error) {
	var docs []models.Document
	if err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at ASC, id ASC").
		Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("gorm list %s: %w", collection, err)
	}

	out := make([][]byte, 0, len(docs))
	for _, d := range docs {
		out = append(out, []byte(d.Body))
	}
	return out, nil
}

func (s *GormStore) Insert(ctx context.Context, collection, id string, doc []byte) error {
	row := models.Document{Collection: collection, ID: id, Body: string(doc)}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrConflict
		}
		return fmt.Errorf("gorm insert %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *GormStore) Replace(ctx context.Context, collection, id string, doc []byte) error {
	res := s.db.WithContext(ctx).
		Model(&models.Document{}).
		Where("collection = ? AND id = ?", collection, id).
		Updates(map[string]any{
			"body":       string(doc),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("gorm replace %s/%s: %w", collection, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Put(ctx context.Context, collection, id string, doc []byte) error {
	row := models.Document{Collection: collection, ID: id, Body: string(doc)}
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
		}).
		Create(&row).Error; err != nil {
		return fmt.Errorf("gorm put %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, collection, id string) error {
	res := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Delete(&models.Document{})
	if res.Error != nil {
		return fmt.Errorf("gorm delete %s/%s: %w", collection, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ Store = (*GormStore)(nil)
