package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/partnerdesk/partner-api/internal/domain"
	"github.com/partnerdesk/partner-api/internal/service"
	"github.com/partnerdesk/partner-api/internal/store"
	"github.com/partnerdesk/partner-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// runOnBothBackends runs the same test body against the relational and
// the JSON-document backend. The two must be behaviorally interchangeable.
func runOnBothBackends(t *testing.T, fn func(t *testing.T, svc *service.DatabaseService)) {
	t.Helper()

	backends := []struct {
		name  string
		build func(t *testing.T) store.Backend
	}{
		{"orm", func(t *testing.T) store.Backend { return testutil.NewORMStore(t) }},
		{"file", func(t *testing.T) store.Backend { return testutil.NewFileStore(t) }},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			svc := service.NewDatabaseService(b.build(t), zap.NewNop())
			fn(t, svc)
		})
	}
}

func TestDatabaseService_CreatePartnerDefaults(t *testing.T) {
	runOnBothBackends(t, func(t *testing.T, svc *service.DatabaseService) {
		ctx := context.Background()

		created, err := svc.CreatePartner(ctx, &domain.Partner{
			PartnerName:  "Acme Relief",
			PartnerType:  "NGO",
			ContactEmail: " Contact@ACME.org ",
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "contact@acme.org", created.ContactEmail)
		assert.Zero(t, created.ContractValue)
		assert.Zero(t, created.BudgetAllocated)
		assert.Zero(t, created.ActualSpent)
		assert.Zero(t, created.TotalPaid())
		assert.False(t, created.CreatedAt.IsZero())

		stored, err := svc.GetPartnerByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, created.ID, stored.ID)
		assert.Equal(t, "contact@acme.org", stored.ContactEmail)
	})
}

func TestDatabaseService_CreatePartnerKeepsCallerID(t *testing.T) {
	runOnBothBackends(t, func(t *testing.T, svc *service.DatabaseService) {
		p := testutil.ValidPartner("Acme Relief")
		p.ID = "partner-fixed-id"

		created, err := svc.CreatePartner(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, "partner-fixed-id", created.ID)
	})
}

func TestDatabaseService_CreatePartnerValidation(t *testing.T) {
	runOnBothBackends(t, func(t *testing.T, svc *service.DatabaseService) {
		ctx := context.Background()

		_, err := svc.CreatePartner(ctx, &domain.Partner{})
		require.Error(t, err)

		ve, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.GreaterOrEqual(t, len(ve.Messages), 3)

		// nothing was persisted
		partners, err := svc.ListPartners(ctx)
		require.NoError(t, err)
		assert.Empty(t, partners)
	})
}

func TestDatabaseService_GetAbsentReturnsNil(t *testing.T) {
	runOnBothBackends(t, func(t *testing.T, svc *service.DatabaseService) {
		ctx := context.Background()

		partner, err := svc.GetPartnerByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, partner)

		person, err := svc.GetPersonnelByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, person)

		deliverable, err := svc.GetDeliverableByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, deliverable)
	})
}

func TestDatabaseService_UpdateAbsentReturnsNotFound(t *testing.T) {
	runOnBothBackends(t, func(t *testing.T, svc *service.DatabaseService) {
		ctx := context.Background()
		name := "New Name"

		_, err := svc.UpdatePartner(ctx, "missing", &domain.PartnerUpdate{PartnerName: &name})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = svc.UpdatePersonnel(ctx, "missing", &domain.PersonnelUpdate{FullName: &name})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = svc.UpdateDeliverable(ctx, "missing", &domain.DeliverableUpdate{DeliverableName: &name})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDatabaseService_UpdateRejectsInvalidMerge(t *testing.T) {
	runOnBothBackends(t, func(t *testing.T, svc *service.DatabaseService) {
		ctx := context.Background()

		created, err := svc.CreatePartner(ctx, testutil.ValidPartner("Acme Relief"))
		require.NoError(t, err)

		bad := "not-an-email"
		_, err = svc.UpdatePartner(ctx, created.ID, &domain.PartnerUpdate{ContactEmail: &bad})
		require.Error(t, err)
		_, ok := domain.AsValidationError(err)
		assert.True(t, ok)

		// stored record untouched by the rejected update
		stored, err := svc.GetPartnerByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "contact@example.org", stored.ContactEmail)
	})
}

func TestDatabaseService_DeleteTwice(t *testing.T) {
	runOnBothBackends(t, func(t *testing.T, svc *service.DatabaseService) {
		ctx := context.Background()

		created, err := svc.CreatePartner(ctx, testutil.ValidPartner("Acme Relief"))
		require.NoError(t, err)

		removed, err := svc.DeletePartner(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = svc.DeletePartner(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, removed)

		stored, err := svc.GetPartnerByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})
}

func TestDatabaseService_DeletePartnerKeepsReferences(t *testing.T) {
	runOnBothBackends(t, func(t *testing.T, svc *service.DatabaseService) {
		ctx := context.Background()

		partner, err := svc.CreatePartner(ctx, testutil.ValidPartner("Acme Relief"))
		require.NoError(t, err)

		person, err := svc.CreatePersonnel(ctx, testutil.ValidPersonnel(partner.ID, "Dana Reyes"))
		require.NoError(t, err)

		removed, err := svc.DeletePartner(ctx, partner.ID)
		require.NoError(t, err)
		assert.True(t, removed)

		// no cascade: the personnel record survives with a dangling reference
		stored, err := svc.GetPersonnelByID(ctx, person.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, partner.ID, stored.PartnerID)
	})
}

func TestDatabaseService_SearchInsertionOrder(t *testing.T) {
	runOnBothBackends(t, func(t *testing.T, svc *service.DatabaseService) {
		ctx := context.Background()

		for _, name := range []string{"FindAlpha", "Other", "BetaFind"} {
			_, err := svc.CreatePartner(ctx, testutil.ValidPartner(name))
			require.NoError(t, err)
		}

		results, err := svc.SearchPartners(ctx, "find")
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "FindAlpha", results[0].PartnerName)
		assert.Equal(t, "BetaFind", results[1].PartnerName)

		// empty term returns everything in insertion order
		all, err := svc.SearchPartners(ctx, "")
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "FindAlpha", all[0].PartnerName)
		assert.Equal(t, "Other", all[1].PartnerName)
		assert.Equal(t, "BetaFind", all[2].PartnerName)
	})
}

func TestDatabaseService_CreatePersonnelFillsDenormalizedFields(t *testing.T) {
	runOnBothBackends(t, func(t *testing.T, svc *service.DatabaseService) {
		ctx := context.Background()

		partner, err := svc.CreatePartner(ctx, testutil.ValidPartner("Acme Relief"))
		require.NoError(t, err)

		person, err := svc.CreatePersonnel(ctx, testutil.ValidPersonnel(partner.ID, "Dana Reyes"))
		require.NoError(t, err)
		assert.Equal(t, "Acme Relief", person.PartnerName)
		assert.Equal(t, "active", person.PartnerStatus)

		// an unknown partner id leaves the denormalized fields empty
		orphan, err := svc.CreatePersonnel(ctx, testutil.ValidPersonnel("no-such-partner", "Kim Osei"))
		require.NoError(t, err)
		assert.Empty(t, orphan.PartnerName)
	})
}

func TestDatabaseService_UpdatePartnerRefreshesReferences(t *testing.T) {
	runOnBothBackends(t, func(t *testing.T, svc *service.DatabaseService) {
		ctx := context.Background()

		partner, err := svc.CreatePartner(ctx, testutil.ValidPartner("Acme Relief"))
		require.NoError(t, err)

		person, err := svc.CreatePersonnel(ctx, testutil.ValidPersonnel(partner.ID, "Dana Reyes"))
		require.NoError(t, err)

		deliverable := testutil.ValidDeliverable("Q1 Report", "Acme Relief", "2026-03-31")
		deliverable.PartnerID = partner.ID
		d, err := svc.CreateDeliverable(ctx, deliverable)
		require.NoError(t, err)

		newName := "Acme Relief International"
		status := domain.ContractStatusExpired
		_, err = svc.UpdatePartner(ctx, partner.ID, &domain.PartnerUpdate{
			PartnerName:    &newName,
			ContractStatus: &status,
		})
		require.NoError(t, err)

		storedPerson, err := svc.GetPersonnelByID(ctx, person.ID)
		require.NoError(t, err)
		assert.Equal(t, newName, storedPerson.PartnerName)
		assert.Equal(t, "expired", storedPerson.PartnerStatus)

		storedDeliverable, err := svc.GetDeliverableByID(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, newName, storedDeliverable.PartnerName)
	})
}

func TestDatabaseService_UpdatePersonnelReassignment(t *testing.T) {
	runOnBothBackends(t, func(t *testing.T, svc *service.DatabaseService) {
		ctx := context.Background()

		first, err := svc.CreatePartner(ctx, testutil.ValidPartner("First Org"))
		require.NoError(t, err)
		second, err := svc.CreatePartner(ctx, testutil.ValidPartner("Second Org"))
		require.NoError(t, err)

		person, err := svc.CreatePersonnel(ctx, testutil.ValidPersonnel(first.ID, "Dana Reyes"))
		require.NoError(t, err)
		assert.Equal(t, "First Org", person.PartnerName)

		updated, err := svc.UpdatePersonnel(ctx, person.ID, &domain.PersonnelUpdate{
			PartnerID: &second.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Second Org", updated.PartnerName)
	})
}

func TestDatabaseService_UpdateDeliverableClampsCompletion(t *testing.T) {
	runOnBothBackends(t, func(t *testing.T, svc *service.DatabaseService) {
		ctx := context.Background()

		d, err := svc.CreateDeliverable(ctx, testutil.ValidDeliverable("Q1 Report", "Acme Relief", "2026-03-31"))
		require.NoError(t, err)
		assert.Equal(t, domain.DeliverableNotStarted, d.Status)
		assert.Equal(t, domain.PriorityMedium, d.Priority)

		status := domain.DeliverableCompleted
		completion := 100
		updated, err := svc.UpdateDeliverable(ctx, d.ID, &domain.DeliverableUpdate{
			Status:               &status,
			CompletionPercentage: &completion,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.DeliverableCompleted, updated.Status)
		assert.Equal(t, 100, updated.CompletionPercentage)
		assert.False(t, updated.IsOverdue(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)))
	})
}

func TestDatabaseService_SyncDenormalizedFields(t *testing.T) {
	backends := []struct {
		name  string
		build func(t *testing.T) store.Backend
	}{
		{"orm", func(t *testing.T) store.Backend { return testutil.NewORMStore(t) }},
		{"file", func(t *testing.T) store.Backend { return testutil.NewFileStore(t) }},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			backend := b.build(t)
			svc := service.NewDatabaseService(backend, zap.NewNop())
			ctx := context.Background()

			partner, err := svc.CreatePartner(ctx, testutil.ValidPartner("Acme Relief"))
			require.NoError(t, err)

			person, err := svc.CreatePersonnel(ctx, testutil.ValidPersonnel(partner.ID, "Dana Reyes"))
			require.NoError(t, err)

			// nothing to repair right after a clean write
			updated, err := svc.SyncDenormalizedFields(ctx)
			require.NoError(t, err)
			assert.Zero(t, updated)

			// drift the copy behind the service's back
			stale := *person
			stale.PartnerName = "Old Name"
			require.NoError(t, backend.SavePersonnel(ctx, &stale))

			updated, err = svc.SyncDenormalizedFields(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, updated)

			repaired, err := svc.GetPersonnelByID(ctx, person.ID)
			require.NoError(t, err)
			assert.Equal(t, "Acme Relief", repaired.PartnerName)
		})
	}
}

func TestDatabaseService_ConcurrentCreates(t *testing.T) {
	// The document backend serializes whole load-mutate-save cycles; this
	// guards against lost inserts under concurrent writers.
	svc := service.NewDatabaseService(testutil.NewFileStore(t), zap.NewNop())
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreatePartner(ctx, testutil.ValidPartner("Concurrent Org"))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	partners, err := svc.ListPartners(ctx)
	require.NoError(t, err)
	assert.Len(t, partners, writers)

	seen := make(map[string]bool, writers)
	for _, p := range partners {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}
