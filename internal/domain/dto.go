package domain

// PartnerSummary is a display view of a partner record
type PartnerSummary struct {
	ID              string   `json:"id"`
	PartnerName     string   `json:"partnerName"`
	PartnerType     string   `json:"partnerType"`
	ContactEmail    string   `json:"contactEmail"`
	ContractStatus  string   `json:"contractStatus"`
	Regions         []string `json:"regions"`
	ContractValue   float64  `json:"contractValue"`
	BudgetAllocated float64  `json:"budgetAllocated"`
	ActualSpent     float64  `json:"actualSpent"`
	TotalPaid       float64  `json:"totalPaid"`
	RemainingBudget float64  `json:"remainingBudget"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// PersonnelSummary is a display view of a personnel record
type PersonnelSummary struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	JobTitle     string `json:"jobTitle"`
	EmailAddress string `json:"emailAddress"`
	PartnerID    string `json:"partnerId"`
	PartnerName  string `json:"partnerName"`
	Affiliation  string `json:"affiliation"`
	Department   string `json:"department"`
	Seniority    string `json:"seniority"`
	WorkStatus   string `json:"workStatus"`
	CreatedAt    string `json:"createdAt"`
}

// DeliverableSummary is a display view of a deliverable record with the
// derived schedule helpers filled in
type DeliverableSummary struct {
	ID                   string `json:"id"`
	DeliverableName      string `json:"deliverableName"`
	PartnerID            string `json:"partnerId"`
	PartnerName          string `json:"partnerName"`
	DueDate              string `json:"dueDate"`
	DueDateDisplay       string `json:"dueDateDisplay"`
	AssignedTo           string `json:"assignedTo"`
	Status               string `json:"status"`
	StatusLabel          string `json:"statusLabel"`
	Priority             string `json:"priority"`
	PriorityLabel        string `json:"priorityLabel"`
	CompletionPercentage int    `json:"completionPercentage"`
	IsOverdue            bool   `json:"isOverdue"`
	DaysUntilDue         int    `json:"daysUntilDue"`
}

// DashboardStats aggregates register-wide counts for dashboard views.
// Aggregate reads return the zero value of this struct on backend error.
type DashboardStats struct {
	TotalPartners        int     `json:"totalPartners"`
	TotalPersonnel       int     `json:"totalPersonnel"`
	ActivePersonnel      int     `json:"activePersonnel"`
	TotalDeliverables    int     `json:"totalDeliverables"`
	OverdueDeliverables  int     `json:"overdueDeliverables"`
	CompletedDeliverable int     `json:"completedDeliverables"`
	AverageCompletion    float64 `json:"averageCompletion"`
	TotalContractValue   float64 `json:"totalContractValue"`
	TotalBudgetAllocated float64 `json:"totalBudgetAllocated"`
	TotalActualSpent     float64 `json:"totalActualSpent"`
}

// FinancialMetrics aggregates the financial position of one partner.
// Returned zero-valued on backend error.
type FinancialMetrics struct {
	PartnerID          string  `json:"partnerId"`
	PartnerName        string  `json:"partnerName"`
	ContractValue      float64 `json:"contractValue"`
	BudgetAllocated    float64 `json:"budgetAllocated"`
	ActualSpent        float64 `json:"actualSpent"`
	RemainingBudget    float64 `json:"remainingBudget"`
	TotalPaid          float64 `json:"totalPaid"`
	QuarterlyPaid      [4]float64 `json:"quarterlyPaid"`
	UtilizationPercent float64 `json:"utilizationPercent"`
	DeliverableCount   int     `json:"deliverableCount"`
	PersonnelCount     int     `json:"personnelCount"`
}
