package ormstore

import (
	"context"
	"errors"
	"strings"

	"github.com/partnerdesk/partner-api/internal/domain"
	"gorm.io/gorm"
)

// InsertPartner writes a new partner row
func (s *Store) InsertPartner(ctx context.Context, p *domain.Partner) error {
	return s.db.WithContext(ctx).Create(p).Error
}

// SavePartner persists every field of an existing partner.
// Returns domain.ErrNotFound when the id does not exist.
func (s *Store) SavePartner(ctx context.Context, p *domain.Partner) error {
	existing, err := s.GetPartner(ctx, p.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return s.db.WithContext(ctx).Save(p).Error
}

// GetPartner returns (nil, nil) when the id is absent
func (s *Store) GetPartner(ctx context.Context, id string) (*domain.Partner, error) {
	var partner domain.Partner
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&partner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

// DeletePartner removes the row, reporting whether anything was deleted.
// A second delete of the same id returns (false, nil).
func (s *Store) DeletePartner(ctx context.Context, id string) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&domain.Partner{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListPartners returns every partner in insertion order
func (s *Store) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	partners := []domain.Partner{}
	err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&partners).Error
	return partners, err
}

// SearchPartners filters with a case-insensitive substring match across the
// same fields the record model's search predicate covers
func (s *Store) SearchPartners(ctx context.Context, term string) ([]domain.Partner, error) {
	if strings.TrimSpace(term) == "" {
		return s.ListPartners(ctx)
	}
	partners := []domain.Partner{}
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	err := s.db.WithContext(ctx).
		Where("LOWER(partner_name) LIKE ? OR LOWER(partner_type) LIKE ? OR LOWER(contact_email) LIKE ? OR LOWER(regions_of_operation) LIKE ? OR LOWER(contract_status) LIKE ?",
			pattern, pattern, pattern, pattern, pattern).
		Order("created_at ASC, id ASC").
		Find(&partners).Error
	return partners, err
}
