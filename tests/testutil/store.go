package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/partnerdesk/partner-api/internal/domain"
	"github.com/partnerdesk/partner-api/internal/store/filestore"
	"github.com/partnerdesk/partner-api/internal/store/ormstore"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewORMStore creates an ORM store over an in-memory SQLite database with
// the register schema migrated.
func NewORMStore(t *testing.T) *ormstore.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open in-memory sqlite")

	err = db.AutoMigrate(&domain.Partner{}, &domain.Personnel{}, &domain.Deliverable{})
	require.NoError(t, err, "failed to migrate register schema")

	store := ormstore.New(db, zap.NewNop())
	require.NoError(t, store.Connect(context.Background()))
	t.Cleanup(func() { _ = store.Disconnect() })

	return store
}

// NewFileStore creates a file store over a fresh document in a temp dir
func NewFileStore(t *testing.T) *filestore.Store {
	t.Helper()

	store := filestore.New(filepath.Join(t.TempDir(), "register.json"), zap.NewNop())
	require.NoError(t, store.Connect(context.Background()))
	t.Cleanup(func() { _ = store.Disconnect() })

	return store
}

// ValidPartner returns a partner record that passes validation
func ValidPartner(name string) *domain.Partner {
	return &domain.Partner{
		PartnerName:        name,
		PartnerType:        "Implementing Partner",
		ContactEmail:       "contact@example.org",
		ContactPhone:       "+47 22 33 44 55",
		RegionsOfOperation: "North, East",
		ContractStatus:     domain.ContractStatusActive,
	}
}

// ValidPersonnel returns a personnel record that passes validation
func ValidPersonnel(partnerID, fullName string) *domain.Personnel {
	return &domain.Personnel{
		PartnerType:  domain.AffiliationExternal,
		PartnerID:    partnerID,
		FullName:     fullName,
		JobTitle:     "Program Coordinator",
		EmailAddress: "coordinator@example.org",
		Department:   domain.DepartmentPrograms,
		Seniority:    domain.SenioritySenior,
		WorkStatus:   domain.WorkStatusActive,
	}
}

// ValidDeliverable returns a deliverable record that passes validation
func ValidDeliverable(name, partnerName, dueDate string) *domain.Deliverable {
	return &domain.Deliverable{
		DeliverableName: name,
		PartnerName:     partnerName,
		DueDate:         dueDate,
		AssignedTo:      "Field Team",
	}
}
