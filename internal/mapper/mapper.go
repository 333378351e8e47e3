package mapper

import (
	"time"

	"github.com/partnerdesk/partner-api/internal/domain"
)

const timestampLayout = "2006-01-02T15:04:05Z"

var statusLabels = map[domain.DeliverableStatus]string{
	domain.DeliverableNotStarted: "Not Started",
	domain.DeliverableInProgress: "In Progress",
	domain.DeliverableInReview:   "In Review",
	domain.DeliverableCompleted:  "Completed",
	domain.DeliverableOverdue:    "Overdue",
}

var priorityLabels = map[domain.DeliverablePriority]string{
	domain.PriorityLow:      "Low",
	domain.PriorityMedium:   "Medium",
	domain.PriorityHigh:     "High",
	domain.PriorityCritical: "Critical",
}

// ToPartnerSummary converts a Partner to its display view
func ToPartnerSummary(p *domain.Partner) domain.PartnerSummary {
	return domain.PartnerSummary{
		ID:              p.ID,
		PartnerName:     p.PartnerName,
		PartnerType:     p.PartnerType,
		ContactEmail:    p.ContactEmail,
		ContractStatus:  string(p.ContractStatus),
		Regions:         p.Regions(),
		ContractValue:   p.ContractValue,
		BudgetAllocated: p.BudgetAllocated,
		ActualSpent:     p.ActualSpent,
		TotalPaid:       p.TotalPaid(),
		RemainingBudget: p.RemainingBudget(),
		CreatedAt:       p.CreatedAt.Format(timestampLayout),
		UpdatedAt:       p.UpdatedAt.Format(timestampLayout),
	}
}

// ToPersonnelSummary converts a Personnel record to its display view
func ToPersonnelSummary(p *domain.Personnel) domain.PersonnelSummary {
	return domain.PersonnelSummary{
		ID:           p.ID,
		FullName:     p.FullName,
		JobTitle:     p.JobTitle,
		EmailAddress: p.EmailAddress,
		PartnerID:    p.PartnerID,
		PartnerName:  p.PartnerName,
		Affiliation:  string(p.PartnerType),
		Department:   string(p.Department),
		Seniority:    string(p.Seniority),
		WorkStatus:   string(p.WorkStatus),
		CreatedAt:    p.CreatedAt.Format(timestampLayout),
	}
}

// ToDeliverableSummary converts a Deliverable to its display view,
// deriving overdue state and days-until-due against the given clock
func ToDeliverableSummary(d *domain.Deliverable, now time.Time) domain.DeliverableSummary {
	summary := domain.DeliverableSummary{
		ID:                   d.ID,
		DeliverableName:      d.DeliverableName,
		PartnerID:            d.PartnerID,
		PartnerName:          d.PartnerName,
		DueDate:              d.DueDate,
		AssignedTo:           d.AssignedTo,
		Status:               string(d.Status),
		StatusLabel:          statusLabels[d.Status],
		Priority:             string(d.Priority),
		PriorityLabel:        priorityLabels[d.Priority],
		CompletionPercentage: d.CompletionPercentage,
		IsOverdue:            d.IsOverdue(now),
		DaysUntilDue:         d.DaysUntilDue(now),
	}

	if due, ok := d.Due(); ok {
		summary.DueDateDisplay = due.Format("2 January 2006")
	}

	return summary
}
