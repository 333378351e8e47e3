package mapper_test

import (
	"testing"
	"time"

	"github.com/partnerdesk/partner-api/internal/domain"
	"github.com/partnerdesk/partner-api/internal/mapper"
	"github.com/stretchr/testify/assert"
)

func TestToPartnerSummary(t *testing.T) {
	p := &domain.Partner{
		ID:                 "partner-1",
		PartnerName:        "Acme Relief",
		PartnerType:        "NGO",
		ContactEmail:       "contact@acme.org",
		ContractStatus:     domain.ContractStatusActive,
		RegionsOfOperation: "North, East",
		ContractValue:      100000,
		BudgetAllocated:    80000,
		ActualSpent:        30000,
		Q1Paid:             10000,
		Q3Paid:             5000,
		CreatedAt:          time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
	}

	summary := mapper.ToPartnerSummary(p)

	assert.Equal(t, "partner-1", summary.ID)
	assert.Equal(t, "active", summary.ContractStatus)
	assert.Equal(t, []string{"North", "East"}, summary.Regions)
	assert.Equal(t, 15000.0, summary.TotalPaid)
	assert.Equal(t, 50000.0, summary.RemainingBudget)
	assert.Equal(t, "2026-01-02T15:04:05Z", summary.CreatedAt)
}

func TestToPersonnelSummary(t *testing.T) {
	p := &domain.Personnel{
		ID:          "person-1",
		PartnerType: domain.AffiliationExternal,
		PartnerID:   "partner-1",
		PartnerName: "Acme Relief",
		FullName:    "Dana Reyes",
		JobTitle:    "Coordinator",
		Department:  domain.DepartmentHR,
		WorkStatus:  domain.WorkStatusOnLeave,
	}

	summary := mapper.ToPersonnelSummary(p)

	assert.Equal(t, "external", summary.Affiliation)
	assert.Equal(t, "Human Resources", summary.Department)
	assert.Equal(t, "On Leave", summary.WorkStatus)
	assert.Equal(t, "Acme Relief", summary.PartnerName)
}

func TestToDeliverableSummary(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	d := &domain.Deliverable{
		ID:                   "deliverable-1",
		DeliverableName:      "Q1 Report",
		PartnerName:          "Acme Relief",
		DueDate:              "2026-03-10",
		AssignedTo:           "Field Team",
		Status:               domain.DeliverableInProgress,
		Priority:             domain.PriorityHigh,
		CompletionPercentage: 60,
	}

	summary := mapper.ToDeliverableSummary(d, now)

	assert.Equal(t, "In Progress", summary.StatusLabel)
	assert.Equal(t, "High", summary.PriorityLabel)
	assert.Equal(t, "10 March 2026", summary.DueDateDisplay)
	assert.True(t, summary.IsOverdue)
	assert.Equal(t, -5, summary.DaysUntilDue)
}

func TestToDeliverableSummary_CompletedNeverOverdue(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	d := &domain.Deliverable{
		DueDate: "2026-03-01",
		Status:  domain.DeliverableCompleted,
	}

	summary := mapper.ToDeliverableSummary(d, now)
	assert.False(t, summary.IsOverdue)
	assert.Equal(t, "Completed", summary.StatusLabel)
}

func TestToDeliverableSummary_UnparseableDueDate(t *testing.T) {
	d := &domain.Deliverable{DueDate: "soon", Status: domain.DeliverableNotStarted}

	summary := mapper.ToDeliverableSummary(d, time.Now())
	assert.Empty(t, summary.DueDateDisplay)
	assert.False(t, summary.IsOverdue)
	assert.Zero(t, summary.DaysUntilDue)
}
