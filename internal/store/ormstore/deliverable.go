package ormstore

import (
	"context"
	"errors"
	"strings"

	"github.com/partnerdesk/partner-api/internal/domain"
	"gorm.io/gorm"
)

// InsertDeliverable writes a new deliverable row
func (s *Store) InsertDeliverable(ctx context.Context, d *domain.Deliverable) error {
	return s.db.WithContext(ctx).Create(d).Error
}

// SaveDeliverable persists every field of an existing deliverable.
// Returns domain.ErrNotFound when the id does not exist.
func (s *Store) SaveDeliverable(ctx context.Context, d *domain.Deliverable) error {
	existing, err := s.GetDeliverable(ctx, d.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return s.db.WithContext(ctx).Save(d).Error
}

// GetDeliverable returns (nil, nil) when the id is absent
func (s *Store) GetDeliverable(ctx context.Context, id string) (*domain.Deliverable, error) {
	var deliverable domain.Deliverable
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&deliverable).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &deliverable, nil
}

// DeleteDeliverable removes the row, reporting whether anything was deleted
func (s *Store) DeleteDeliverable(ctx context.Context, id string) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&domain.Deliverable{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListDeliverables returns every deliverable in insertion order
func (s *Store) ListDeliverables(ctx context.Context) ([]domain.Deliverable, error) {
	deliverables := []domain.Deliverable{}
	err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&deliverables).Error
	return deliverables, err
}

// SearchDeliverables filters with a case-insensitive substring match across
// the fields the record model's search predicate covers
func (s *Store) SearchDeliverables(ctx context.Context, term string) ([]domain.Deliverable, error) {
	if strings.TrimSpace(term) == "" {
		return s.ListDeliverables(ctx)
	}
	deliverables := []domain.Deliverable{}
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	err := s.db.WithContext(ctx).
		Where("LOWER(deliverable_name) LIKE ? OR LOWER(partner_name) LIKE ? OR LOWER(assigned_to) LIKE ? OR LOWER(description) LIKE ? OR LOWER(status) LIKE ?",
			pattern, pattern, pattern, pattern, pattern).
		Order("created_at ASC, id ASC").
		Find(&deliverables).Error
	return deliverables, err
}
