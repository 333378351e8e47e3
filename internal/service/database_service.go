// Package service exposes the uniform CRUD facade over the configured
// persistence backend. Callers receive a DatabaseService instance and never
// learn which backend serves them; id generation and record normalization
// are applied here, before any write reaches a backend.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/partnerdesk/partner-api/internal/domain"
	"github.com/partnerdesk/partner-api/internal/store"
	"go.uber.org/zap"
)

// DatabaseService is the facade over the active persistence backend
type DatabaseService struct {
	backend store.Backend
	logger  *zap.Logger
	now     func() time.Time
}

// Option configures a DatabaseService
type Option func(*DatabaseService)

// WithClock overrides the wall clock, used by tests that pin time
func WithClock(now func() time.Time) Option {
	return func(s *DatabaseService) {
		s.now = now
	}
}

// NewDatabaseService creates the facade over one backend chosen by the
// caller from configuration. The backend never changes afterwards.
func NewDatabaseService(backend store.Backend, logger *zap.Logger, opts ...Option) *DatabaseService {
	s := &DatabaseService{
		backend: backend,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Connect acquires the backend's resource. Idempotent.
func (s *DatabaseService) Connect(ctx context.Context) error {
	return s.backend.Connect(ctx)
}

// Disconnect releases the backend's resource. Safe to call repeatedly.
func (s *DatabaseService) Disconnect() error {
	return s.backend.Disconnect()
}

// CreatePartner normalizes, validates, and stores a partner record,
// generating an id when the payload lacks one
func (s *DatabaseService) CreatePartner(ctx context.Context, p *domain.Partner) (*domain.Partner, error) {
	p.Normalize()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := p.Validate().Err(); err != nil {
		return nil, err
	}

	now := s.now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.backend.InsertPartner(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create partner: %w", err)
	}

	s.logger.Info("partner created",
		zap.String("partner_id", p.ID),
		zap.String("partner_name", p.PartnerName),
	)
	return p, nil
}

// GetPartnerByID returns (nil, nil) when the id is absent
func (s *DatabaseService) GetPartnerByID(ctx context.Context, id string) (*domain.Partner, error) {
	return s.backend.GetPartner(ctx, id)
}

// UpdatePartner merges a partial update into the stored record,
// re-normalizes, persists, and refreshes the denormalized partner fields
// carried by personnel and deliverable records referencing it.
// Returns domain.ErrNotFound when the id does not exist.
func (s *DatabaseService) UpdatePartner(ctx context.Context, id string, update *domain.PartnerUpdate) (*domain.Partner, error) {
	partner, err := s.backend.GetPartner(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}

	update.ApplyTo(partner)
	partner.Normalize()
	if err := partner.Validate().Err(); err != nil {
		return nil, err
	}
	partner.UpdatedAt = s.now()

	if err := s.backend.SavePartner(ctx, partner); err != nil {
		return nil, fmt.Errorf("failed to update partner: %w", err)
	}

	if err := s.refreshDenormalizedFor(ctx, partner); err != nil {
		// The partner write itself succeeded; referencing records are
		// repaired by the resync job if this pass fails.
		s.logger.Warn("failed to refresh denormalized partner fields",
			zap.String("partner_id", partner.ID),
			zap.Error(err),
		)
	}

	return partner, nil
}

// DeletePartner removes the record. A repeated delete of the same id
// returns (false, nil); related personnel and deliverables are not
// cascade-deleted.
func (s *DatabaseService) DeletePartner(ctx context.Context, id string) (bool, error) {
	removed, err := s.backend.DeletePartner(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete partner: %w", err)
	}
	if removed {
		s.logger.Info("partner deleted", zap.String("partner_id", id))
	}
	return removed, nil
}

// ListPartners returns every partner in insertion order
func (s *DatabaseService) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	return s.backend.ListPartners(ctx)
}

// SearchPartners returns matching partners in insertion order; an empty
// term returns every record
func (s *DatabaseService) SearchPartners(ctx context.Context, term string) ([]domain.Partner, error) {
	return s.backend.SearchPartners(ctx, term)
}

// CreatePersonnel normalizes, validates, and stores a personnel record.
// The denormalized partner name/status are filled from the referenced
// partner when it exists.
func (s *DatabaseService) CreatePersonnel(ctx context.Context, p *domain.Personnel) (*domain.Personnel, error) {
	p.Normalize()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := p.Validate().Err(); err != nil {
		return nil, err
	}

	if partner, err := s.backend.GetPartner(ctx, p.PartnerID); err == nil && partner != nil {
		p.PartnerName = partner.PartnerName
		p.PartnerStatus = string(partner.ContractStatus)
	}

	now := s.now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.backend.InsertPersonnel(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create personnel: %w", err)
	}

	s.logger.Info("personnel created",
		zap.String("personnel_id", p.ID),
		zap.String("partner_id", p.PartnerID),
	)
	return p, nil
}

// GetPersonnelByID returns (nil, nil) when the id is absent
func (s *DatabaseService) GetPersonnelByID(ctx context.Context, id string) (*domain.Personnel, error) {
	return s.backend.GetPersonnel(ctx, id)
}

// UpdatePersonnel merges a partial update, re-normalizes, and persists.
// A partner reassignment refreshes the denormalized partner fields in the
// same write. Returns domain.ErrNotFound when the id does not exist.
func (s *DatabaseService) UpdatePersonnel(ctx context.Context, id string, update *domain.PersonnelUpdate) (*domain.Personnel, error) {
	person, err := s.backend.GetPersonnel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get personnel: %w", err)
	}
	if person == nil {
		return nil, domain.ErrNotFound
	}

	reassigned := update.PartnerID != nil && *update.PartnerID != person.PartnerID
	update.ApplyTo(person)
	person.Normalize()
	if err := person.Validate().Err(); err != nil {
		return nil, err
	}

	if reassigned {
		if partner, err := s.backend.GetPartner(ctx, person.PartnerID); err == nil && partner != nil {
			person.PartnerName = partner.PartnerName
			person.PartnerStatus = string(partner.ContractStatus)
		}
	}
	person.UpdatedAt = s.now()

	if err := s.backend.SavePersonnel(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to update personnel: %w", err)
	}
	return person, nil
}

// DeletePersonnel removes the record; a repeated delete returns (false, nil)
func (s *DatabaseService) DeletePersonnel(ctx context.Context, id string) (bool, error) {
	removed, err := s.backend.DeletePersonnel(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete personnel: %w", err)
	}
	return removed, nil
}

// ListPersonnel returns every personnel record in insertion order
func (s *DatabaseService) ListPersonnel(ctx context.Context) ([]domain.Personnel, error) {
	return s.backend.ListPersonnel(ctx)
}

// SearchPersonnel returns matching personnel in insertion order
func (s *DatabaseService) SearchPersonnel(ctx context.Context, term string) ([]domain.Personnel, error) {
	return s.backend.SearchPersonnel(ctx, term)
}

// CreateDeliverable normalizes, validates, and stores a deliverable.
// Like every other record type, the write gate is fail-closed.
func (s *DatabaseService) CreateDeliverable(ctx context.Context, d *domain.Deliverable) (*domain.Deliverable, error) {
	d.Normalize()
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if err := d.Validate().Err(); err != nil {
		return nil, err
	}

	if d.PartnerID != "" {
		if partner, err := s.backend.GetPartner(ctx, d.PartnerID); err == nil && partner != nil {
			d.PartnerName = partner.PartnerName
		}
	}

	now := s.now()
	d.CreatedAt = now
	d.UpdatedAt = now

	if err := s.backend.InsertDeliverable(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create deliverable: %w", err)
	}

	s.logger.Info("deliverable created",
		zap.String("deliverable_id", d.ID),
		zap.String("due_date", d.DueDate),
	)
	return d, nil
}

// GetDeliverableByID returns (nil, nil) when the id is absent
func (s *DatabaseService) GetDeliverableByID(ctx context.Context, id string) (*domain.Deliverable, error) {
	return s.backend.GetDeliverable(ctx, id)
}

// UpdateDeliverable merges a partial update, re-normalizes, and persists.
// Returns domain.ErrNotFound when the id does not exist.
func (s *DatabaseService) UpdateDeliverable(ctx context.Context, id string, update *domain.DeliverableUpdate) (*domain.Deliverable, error) {
	deliverable, err := s.backend.GetDeliverable(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get deliverable: %w", err)
	}
	if deliverable == nil {
		return nil, domain.ErrNotFound
	}

	update.ApplyTo(deliverable)
	deliverable.Normalize()
	if err := deliverable.Validate().Err(); err != nil {
		return nil, err
	}
	deliverable.UpdatedAt = s.now()

	if err := s.backend.SaveDeliverable(ctx, deliverable); err != nil {
		return nil, fmt.Errorf("failed to update deliverable: %w", err)
	}
	return deliverable, nil
}

// DeleteDeliverable removes the record; a repeated delete returns (false, nil)
func (s *DatabaseService) DeleteDeliverable(ctx context.Context, id string) (bool, error) {
	removed, err := s.backend.DeleteDeliverable(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete deliverable: %w", err)
	}
	return removed, nil
}

// ListDeliverables returns every deliverable in insertion order
func (s *DatabaseService) ListDeliverables(ctx context.Context) ([]domain.Deliverable, error) {
	return s.backend.ListDeliverables(ctx)
}

// SearchDeliverables returns matching deliverables in insertion order
func (s *DatabaseService) SearchDeliverables(ctx context.Context, term string) ([]domain.Deliverable, error) {
	return s.backend.SearchDeliverables(ctx, term)
}

// refreshDenormalizedFor rewrites the denormalized partner name/status on
// every personnel and deliverable record referencing the given partner
func (s *DatabaseService) refreshDenormalizedFor(ctx context.Context, partner *domain.Partner) error {
	personnel, err := s.backend.ListPersonnel(ctx)
	if err != nil {
		return err
	}
	for i := range personnel {
		p := &personnel[i]
		if p.PartnerID != partner.ID {
			continue
		}
		if p.PartnerName == partner.PartnerName && p.PartnerStatus == string(partner.ContractStatus) {
			continue
		}
		p.PartnerName = partner.PartnerName
		p.PartnerStatus = string(partner.ContractStatus)
		p.UpdatedAt = s.now()
		if err := s.backend.SavePersonnel(ctx, p); err != nil {
			return err
		}
	}

	deliverables, err := s.backend.ListDeliverables(ctx)
	if err != nil {
		return err
	}
	for i := range deliverables {
		d := &deliverables[i]
		if d.PartnerID != partner.ID || d.PartnerName == partner.PartnerName {
			continue
		}
		d.PartnerName = partner.PartnerName
		d.UpdatedAt = s.now()
		if err := s.backend.SaveDeliverable(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

// SyncDenormalizedFields walks every personnel and deliverable record and
// repairs denormalized partner fields that drifted from the authoritative
// partner record. Returns the number of records rewritten. Used by the
// scheduled resync job; safe to run at any time.
func (s *DatabaseService) SyncDenormalizedFields(ctx context.Context) (int, error) {
	partners, err := s.backend.ListPartners(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list partners: %w", err)
	}
	byID := make(map[string]*domain.Partner, len(partners))
	for i := range partners {
		byID[partners[i].ID] = &partners[i]
	}

	updated := 0

	personnel, err := s.backend.ListPersonnel(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list personnel: %w", err)
	}
	for i := range personnel {
		p := &personnel[i]
		partner, ok := byID[p.PartnerID]
		if !ok {
			continue
		}
		if p.PartnerName == partner.PartnerName && p.PartnerStatus == string(partner.ContractStatus) {
			continue
		}
		p.PartnerName = partner.PartnerName
		p.PartnerStatus = string(partner.ContractStatus)
		p.UpdatedAt = s.now()
		if err := s.backend.SavePersonnel(ctx, p); err != nil {
			return updated, fmt.Errorf("failed to sync personnel %s: %w", p.ID, err)
		}
		updated++
	}

	deliverables, err := s.backend.ListDeliverables(ctx)
	if err != nil {
		return updated, fmt.Errorf("failed to list deliverables: %w", err)
	}
	for i := range deliverables {
		d := &deliverables[i]
		partner, ok := byID[d.PartnerID]
		if !ok || d.PartnerName == partner.PartnerName {
			continue
		}
		d.PartnerName = partner.PartnerName
		d.UpdatedAt = s.now()
		if err := s.backend.SaveDeliverable(ctx, d); err != nil {
			return updated, fmt.Errorf("failed to sync deliverable %s: %w", d.ID, err)
		}
		updated++
	}

	if updated > 0 {
		s.logger.Info("denormalized partner fields resynced", zap.Int("updated", updated))
	}
	return updated, nil
}
