package ormstore

import (
	"context"
	"errors"
	"strings"

	"github.com/partnerdesk/partner-api/internal/domain"
	"gorm.io/gorm"
)

// InsertPersonnel writes a new personnel row
func (s *Store) InsertPersonnel(ctx context.Context, p *domain.Personnel) error {
	return s.db.WithContext(ctx).Create(p).Error
}

// SavePersonnel persists every field of an existing personnel record.
// Returns domain.ErrNotFound when the id does not exist.
func (s *Store) SavePersonnel(ctx context.Context, p *domain.Personnel) error {
	existing, err := s.GetPersonnel(ctx, p.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return s.db.WithContext(ctx).Save(p).Error
}

// GetPersonnel returns (nil, nil) when the id is absent
func (s *Store) GetPersonnel(ctx context.Context, id string) (*domain.Personnel, error) {
	var person domain.Personnel
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&person).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// DeletePersonnel removes the row, reporting whether anything was deleted
func (s *Store) DeletePersonnel(ctx context.Context, id string) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&domain.Personnel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListPersonnel returns every personnel record in insertion order
func (s *Store) ListPersonnel(ctx context.Context) ([]domain.Personnel, error) {
	personnel := []domain.Personnel{}
	err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&personnel).Error
	return personnel, err
}

// SearchPersonnel filters with a case-insensitive substring match across the
// fields the record model's search predicate covers
func (s *Store) SearchPersonnel(ctx context.Context, term string) ([]domain.Personnel, error) {
	if strings.TrimSpace(term) == "" {
		return s.ListPersonnel(ctx)
	}
	personnel := []domain.Personnel{}
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	err := s.db.WithContext(ctx).
		Where("LOWER(full_name) LIKE ? OR LOWER(job_title) LIKE ? OR LOWER(email_address) LIKE ? OR LOWER(department) LIKE ? OR LOWER(partner_name) LIKE ? OR LOWER(skills) LIKE ? OR LOWER(responsibilities) LIKE ?",
			pattern, pattern, pattern, pattern, pattern, pattern, pattern).
		Order("created_at ASC, id ASC").
		Find(&personnel).Error
	return personnel, err
}
