// Package store defines the persistence contract shared by the relational
// and JSON-document backends. The service facade holds exactly one Backend,
// chosen at construction time from configuration; callers never branch on
// which backend is active.
package store

import (
	"context"

	"github.com/partnerdesk/partner-api/internal/domain"
)

// Backend is the uniform persistence surface. Both implementations follow
// the same observable semantics:
//
//   - Get* returns (nil, nil) for an absent id.
//   - Save* returns domain.ErrNotFound when the id does not exist.
//   - Delete* returns (false, nil) when the record was already absent.
//   - List*/Search* preserve insertion order and always return a slice.
type Backend interface {
	Connect(ctx context.Context) error
	Disconnect() error

	InsertPartner(ctx context.Context, p *domain.Partner) error
	SavePartner(ctx context.Context, p *domain.Partner) error
	GetPartner(ctx context.Context, id string) (*domain.Partner, error)
	DeletePartner(ctx context.Context, id string) (bool, error)
	ListPartners(ctx context.Context) ([]domain.Partner, error)
	SearchPartners(ctx context.Context, term string) ([]domain.Partner, error)

	InsertPersonnel(ctx context.Context, p *domain.Personnel) error
	SavePersonnel(ctx context.Context, p *domain.Personnel) error
	GetPersonnel(ctx context.Context, id string) (*domain.Personnel, error)
	DeletePersonnel(ctx context.Context, id string) (bool, error)
	ListPersonnel(ctx context.Context) ([]domain.Personnel, error)
	SearchPersonnel(ctx context.Context, term string) ([]domain.Personnel, error)

	InsertDeliverable(ctx context.Context, d *domain.Deliverable) error
	SaveDeliverable(ctx context.Context, d *domain.Deliverable) error
	GetDeliverable(ctx context.Context, id string) (*domain.Deliverable, error)
	DeleteDeliverable(ctx context.Context, id string) (bool, error)
	ListDeliverables(ctx context.Context) ([]domain.Deliverable, error)
	SearchDeliverables(ctx context.Context, term string) ([]domain.Deliverable, error)
}
