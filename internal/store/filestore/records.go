package filestore

import (
	"context"

	"github.com/partnerdesk/partner-api/internal/domain"
)

// InsertPartner appends a partner to the master register
func (s *Store) InsertPartner(ctx context.Context, p *domain.Partner) error {
	return s.mutate(func(doc *document) (bool, error) {
		doc.MasterRegister = append(doc.MasterRegister, *p)
		return true, nil
	})
}

// SavePartner replaces the stored partner with the same id.
// Returns domain.ErrNotFound when the id does not exist.
func (s *Store) SavePartner(ctx context.Context, p *domain.Partner) error {
	return s.mutate(func(doc *document) (bool, error) {
		for i := range doc.MasterRegister {
			if doc.MasterRegister[i].ID == p.ID {
				doc.MasterRegister[i] = *p
				return true, nil
			}
		}
		return false, domain.ErrNotFound
	})
}

// GetPartner returns (nil, nil) when the id is absent
func (s *Store) GetPartner(ctx context.Context, id string) (*domain.Partner, error) {
	var found *domain.Partner
	s.view(func(doc *document) {
		for i := range doc.MasterRegister {
			if doc.MasterRegister[i].ID == id {
				p := doc.MasterRegister[i]
				found = &p
				return
			}
		}
	})
	return found, nil
}

// DeletePartner removes the partner, reporting whether anything was removed
func (s *Store) DeletePartner(ctx context.Context, id string) (bool, error) {
	removed := false
	err := s.mutate(func(doc *document) (bool, error) {
		for i := range doc.MasterRegister {
			if doc.MasterRegister[i].ID == id {
				doc.MasterRegister = append(doc.MasterRegister[:i], doc.MasterRegister[i+1:]...)
				removed = true
				return true, nil
			}
		}
		return false, nil
	})
	return removed, err
}

// ListPartners returns every partner in document order
func (s *Store) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	var partners []domain.Partner
	s.view(func(doc *document) {
		partners = append([]domain.Partner{}, doc.MasterRegister...)
	})
	return partners, nil
}

// SearchPartners filters with the record model's search predicate,
// preserving document order
func (s *Store) SearchPartners(ctx context.Context, term string) ([]domain.Partner, error) {
	matches := []domain.Partner{}
	s.view(func(doc *document) {
		for i := range doc.MasterRegister {
			if doc.MasterRegister[i].MatchesSearch(term) {
				matches = append(matches, doc.MasterRegister[i])
			}
		}
	})
	return matches, nil
}

// InsertPersonnel appends a personnel record
func (s *Store) InsertPersonnel(ctx context.Context, p *domain.Personnel) error {
	return s.mutate(func(doc *document) (bool, error) {
		doc.Personnel = append(doc.Personnel, *p)
		return true, nil
	})
}

// SavePersonnel replaces the stored personnel record with the same id.
// Returns domain.ErrNotFound when the id does not exist.
func (s *Store) SavePersonnel(ctx context.Context, p *domain.Personnel) error {
	return s.mutate(func(doc *document) (bool, error) {
		for i := range doc.Personnel {
			if doc.Personnel[i].ID == p.ID {
				doc.Personnel[i] = *p
				return true, nil
			}
		}
		return false, domain.ErrNotFound
	})
}

// GetPersonnel returns (nil, nil) when the id is absent
func (s *Store) GetPersonnel(ctx context.Context, id string) (*domain.Personnel, error) {
	var found *domain.Personnel
	s.view(func(doc *document) {
		for i := range doc.Personnel {
			if doc.Personnel[i].ID == id {
				p := doc.Personnel[i]
				found = &p
				return
			}
		}
	})
	return found, nil
}

// DeletePersonnel removes the record, reporting whether anything was removed
func (s *Store) DeletePersonnel(ctx context.Context, id string) (bool, error) {
	removed := false
	err := s.mutate(func(doc *document) (bool, error) {
		for i := range doc.Personnel {
			if doc.Personnel[i].ID == id {
				doc.Personnel = append(doc.Personnel[:i], doc.Personnel[i+1:]...)
				removed = true
				return true, nil
			}
		}
		return false, nil
	})
	return removed, err
}

// ListPersonnel returns every personnel record in document order
func (s *Store) ListPersonnel(ctx context.Context) ([]domain.Personnel, error) {
	var personnel []domain.Personnel
	s.view(func(doc *document) {
		personnel = append([]domain.Personnel{}, doc.Personnel...)
	})
	return personnel, nil
}

// SearchPersonnel filters with the record model's search predicate
func (s *Store) SearchPersonnel(ctx context.Context, term string) ([]domain.Personnel, error) {
	matches := []domain.Personnel{}
	s.view(func(doc *document) {
		for i := range doc.Personnel {
			if doc.Personnel[i].MatchesSearch(term) {
				matches = append(matches, doc.Personnel[i])
			}
		}
	})
	return matches, nil
}

// InsertDeliverable appends a deliverable record
func (s *Store) InsertDeliverable(ctx context.Context, d *domain.Deliverable) error {
	return s.mutate(func(doc *document) (bool, error) {
		doc.Deliverables = append(doc.Deliverables, *d)
		return true, nil
	})
}

// SaveDeliverable replaces the stored deliverable with the same id.
// Returns domain.ErrNotFound when the id does not exist.
func (s *Store) SaveDeliverable(ctx context.Context, d *domain.Deliverable) error {
	return s.mutate(func(doc *document) (bool, error) {
		for i := range doc.Deliverables {
			if doc.Deliverables[i].ID == d.ID {
				doc.Deliverables[i] = *d
				return true, nil
			}
		}
		return false, domain.ErrNotFound
	})
}

// GetDeliverable returns (nil, nil) when the id is absent
func (s *Store) GetDeliverable(ctx context.Context, id string) (*domain.Deliverable, error) {
	var found *domain.Deliverable
	s.view(func(doc *document) {
		for i := range doc.Deliverables {
			if doc.Deliverables[i].ID == id {
				d := doc.Deliverables[i]
				found = &d
				return
			}
		}
	})
	return found, nil
}

// DeleteDeliverable removes the record, reporting whether anything was removed
func (s *Store) DeleteDeliverable(ctx context.Context, id string) (bool, error) {
	removed := false
	err := s.mutate(func(doc *document) (bool, error) {
		for i := range doc.Deliverables {
			if doc.Deliverables[i].ID == id {
				doc.Deliverables = append(doc.Deliverables[:i], doc.Deliverables[i+1:]...)
				removed = true
				return true, nil
			}
		}
		return false, nil
	})
	return removed, err
}

// ListDeliverables returns every deliverable in document order
func (s *Store) ListDeliverables(ctx context.Context) ([]domain.Deliverable, error) {
	var deliverables []domain.Deliverable
	s.view(func(doc *document) {
		deliverables = append([]domain.Deliverable{}, doc.Deliverables...)
	})
	return deliverables, nil
}

// SearchDeliverables filters with the record model's search predicate
func (s *Store) SearchDeliverables(ctx context.Context, term string) ([]domain.Deliverable, error) {
	matches := []domain.Deliverable{}
	s.view(func(doc *document) {
		for i := range doc.Deliverables {
			if doc.Deliverables[i].MatchesSearch(term) {
				matches = append(matches, doc.Deliverables[i])
			}
		}
	})
	return matches, nil
}
