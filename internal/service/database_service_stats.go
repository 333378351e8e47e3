package service

import (
	"context"

	"github.com/partnerdesk/partner-api/internal/domain"
	"go.uber.org/zap"
)

// GetDashboardStats aggregates register-wide counts. On backend error it
// logs and returns the zero-valued struct so dashboards never hard-fail
// from one bad aggregate.
func (s *DatabaseService) GetDashboardStats(ctx context.Context) domain.DashboardStats {
	stats := domain.DashboardStats{}

	partners, err := s.backend.ListPartners(ctx)
	if err != nil {
		s.logger.Error("dashboard stats unavailable", zap.Error(err))
		return domain.DashboardStats{}
	}
	stats.TotalPartners = len(partners)
	for i := range partners {
		stats.TotalContractValue += partners[i].ContractValue
		stats.TotalBudgetAllocated += partners[i].BudgetAllocated
		stats.TotalActualSpent += partners[i].ActualSpent
	}

	personnel, err := s.backend.ListPersonnel(ctx)
	if err != nil {
		s.logger.Error("dashboard stats unavailable", zap.Error(err))
		return domain.DashboardStats{}
	}
	stats.TotalPersonnel = len(personnel)
	for i := range personnel {
		if personnel[i].WorkStatus == domain.WorkStatusActive {
			stats.ActivePersonnel++
		}
	}

	deliverables, err := s.backend.ListDeliverables(ctx)
	if err != nil {
		s.logger.Error("dashboard stats unavailable", zap.Error(err))
		return domain.DashboardStats{}
	}
	stats.TotalDeliverables = len(deliverables)
	now := s.now()
	completionSum := 0
	for i := range deliverables {
		d := &deliverables[i]
		completionSum += d.CompletionPercentage
		if d.IsOverdue(now) {
			stats.OverdueDeliverables++
		}
		if d.Status == domain.DeliverableCompleted {
			stats.CompletedDeliverable++
		}
	}
	if len(deliverables) > 0 {
		stats.AverageCompletion = float64(completionSum) / float64(len(deliverables))
	}

	return stats
}

// GetFinancialMetrics aggregates the financial position of one partner.
// On backend error, or when the partner is absent, it logs and returns the
// zero-valued struct.
func (s *DatabaseService) GetFinancialMetrics(ctx context.Context, partnerID string) domain.FinancialMetrics {
	partner, err := s.backend.GetPartner(ctx, partnerID)
	if err != nil {
		s.logger.Error("financial metrics unavailable",
			zap.String("partner_id", partnerID),
			zap.Error(err),
		)
		return domain.FinancialMetrics{}
	}
	if partner == nil {
		return domain.FinancialMetrics{}
	}

	metrics := domain.FinancialMetrics{
		PartnerID:       partner.ID,
		PartnerName:     partner.PartnerName,
		ContractValue:   partner.ContractValue,
		BudgetAllocated: partner.BudgetAllocated,
		ActualSpent:     partner.ActualSpent,
		RemainingBudget: partner.RemainingBudget(),
		TotalPaid:       partner.TotalPaid(),
		QuarterlyPaid:   [4]float64{partner.Q1Paid, partner.Q2Paid, partner.Q3Paid, partner.Q4Paid},
	}
	if partner.BudgetAllocated > 0 {
		metrics.UtilizationPercent = partner.ActualSpent / partner.BudgetAllocated * 100
	}

	deliverables, err := s.backend.ListDeliverables(ctx)
	if err != nil {
		s.logger.Error("financial metrics unavailable",
			zap.String("partner_id", partnerID),
			zap.Error(err),
		)
		return domain.FinancialMetrics{}
	}
	for i := range deliverables {
		if deliverables[i].PartnerID == partnerID {
			metrics.DeliverableCount++
		}
	}

	personnel, err := s.backend.ListPersonnel(ctx)
	if err != nil {
		s.logger.Error("financial metrics unavailable",
			zap.String("partner_id", partnerID),
			zap.Error(err),
		)
		return domain.FinancialMetrics{}
	}
	for i := range personnel {
		if personnel[i].PartnerID == partnerID {
			metrics.PersonnelCount++
		}
	}

	return metrics
}
