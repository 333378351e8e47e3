package domain

import (
	"strings"
	"time"
)

// ContractStatus represents the status of a partner contract
type ContractStatus string

const (
	ContractStatusActive     ContractStatus = "active"
	ContractStatusPending    ContractStatus = "pending"
	ContractStatusExpired    ContractStatus = "expired"
	ContractStatusTerminated ContractStatus = "terminated"
)

// IsValid checks if the ContractStatus is a valid enum value
func (cs ContractStatus) IsValid() bool {
	switch cs {
	case ContractStatusActive, ContractStatusPending, ContractStatusExpired, ContractStatusTerminated:
		return true
	}
	return false
}

// Partner is the root record of the register. Personnel and Deliverable
// records reference it by ID without owning it; deleting a partner does
// not cascade to them.
type Partner struct {
	ID                 string         `gorm:"type:varchar(64);primaryKey" json:"id"`
	PartnerName        string         `gorm:"type:varchar(200);not null;index;column:partner_name" json:"partnerName" validate:"required"`
	PartnerType        string         `gorm:"type:varchar(100);not null;column:partner_type" json:"partnerType" validate:"required"`
	ContactEmail       string         `gorm:"type:varchar(255);not null;column:contact_email" json:"contactEmail" validate:"required,email"`
	ContactPhone       string         `gorm:"type:varchar(50);column:contact_phone" json:"contactPhone,omitempty" validate:"omitempty,loosephone"`
	RegionsOfOperation string         `gorm:"type:varchar(500);column:regions_of_operation" json:"regionsOfOperation,omitempty"`
	KeyPersonnel       string         `gorm:"type:varchar(500);column:key_personnel" json:"keyPersonnel,omitempty"`
	ContractStatus     ContractStatus `gorm:"type:varchar(50);column:contract_status" json:"contractStatus,omitempty" validate:"omitempty,oneof=active pending expired terminated"`
	ContractValue      float64        `gorm:"type:decimal(15,2);not null;default:0;column:contract_value" json:"contractValue"`
	BudgetAllocated    float64        `gorm:"type:decimal(15,2);not null;default:0;column:budget_allocated" json:"budgetAllocated"`
	ActualSpent        float64        `gorm:"type:decimal(15,2);not null;default:0;column:actual_spent" json:"actualSpent"`
	Q1Paid             float64        `gorm:"type:decimal(15,2);not null;default:0;column:q1_paid" json:"q1Paid"`
	Q2Paid             float64        `gorm:"type:decimal(15,2);not null;default:0;column:q2_paid" json:"q2Paid"`
	Q3Paid             float64        `gorm:"type:decimal(15,2);not null;default:0;column:q3_paid" json:"q3Paid"`
	Q4Paid             float64        `gorm:"type:decimal(15,2);not null;default:0;column:q4_paid" json:"q4Paid"`
	CreatedAt          time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt          time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// Normalize trims string fields, lower-cases the contact email, and
// canonicalizes the region list to "a, b, c" form. Calling it more than
// once yields the same record.
func (p *Partner) Normalize() {
	p.ID = strings.TrimSpace(p.ID)
	p.PartnerName = strings.TrimSpace(p.PartnerName)
	p.PartnerType = strings.TrimSpace(p.PartnerType)
	p.ContactEmail = strings.ToLower(strings.TrimSpace(p.ContactEmail))
	p.ContactPhone = strings.TrimSpace(p.ContactPhone)
	p.RegionsOfOperation = joinLabels(splitLabels(p.RegionsOfOperation))
	p.KeyPersonnel = strings.TrimSpace(p.KeyPersonnel)
	p.ContractStatus = ContractStatus(strings.ToLower(strings.TrimSpace(string(p.ContractStatus))))
}

// Regions returns the region labels as a slice
func (p *Partner) Regions() []string {
	return splitLabels(p.RegionsOfOperation)
}

// TotalPaid returns the sum of the quarterly payments
func (p *Partner) TotalPaid() float64 {
	return p.Q1Paid + p.Q2Paid + p.Q3Paid + p.Q4Paid
}

// RemainingBudget returns the unspent part of the allocated budget
func (p *Partner) RemainingBudget() float64 {
	return p.BudgetAllocated - p.ActualSpent
}

// MatchesSearch reports whether the partner matches a case-insensitive
// substring search. An empty term matches every record.
func (p *Partner) MatchesSearch(term string) bool {
	return matchesAny(term,
		p.PartnerName,
		p.PartnerType,
		p.ContactEmail,
		p.RegionsOfOperation,
		string(p.ContractStatus),
	)
}

// PartnerAffiliation classifies personnel as internal staff or
// external partner staff
type PartnerAffiliation string

const (
	AffiliationInternal PartnerAffiliation = "internal"
	AffiliationExternal PartnerAffiliation = "external"
)

// IsValid checks if the PartnerAffiliation is a valid enum value
func (pa PartnerAffiliation) IsValid() bool {
	return pa == AffiliationInternal || pa == AffiliationExternal
}

// WorkStatus represents the employment status of a personnel record
type WorkStatus string

const (
	WorkStatusActive     WorkStatus = "Active"
	WorkStatusOnLeave    WorkStatus = "On Leave"
	WorkStatusInactive   WorkStatus = "Inactive"
	WorkStatusTerminated WorkStatus = "Terminated"
)

// IsValid checks if the WorkStatus is a valid enum value
func (ws WorkStatus) IsValid() bool {
	switch ws {
	case WorkStatusActive, WorkStatusOnLeave, WorkStatusInactive, WorkStatusTerminated:
		return true
	}
	return false
}

// Department represents the organizational unit of a personnel record
type Department string

const (
	DepartmentPrograms   Department = "Programs"
	DepartmentFinance    Department = "Finance"
	DepartmentOperations Department = "Operations"
	DepartmentHR         Department = "Human Resources"
	DepartmentIT         Department = "IT"
	DepartmentCompliance Department = "Compliance"
	DepartmentOther      Department = "Other"
)

// IsValid checks if the Department is a valid enum value
func (d Department) IsValid() bool {
	switch d {
	case DepartmentPrograms, DepartmentFinance, DepartmentOperations,
		DepartmentHR, DepartmentIT, DepartmentCompliance, DepartmentOther:
		return true
	}
	return false
}

// Seniority represents the seniority level of a personnel record
type Seniority string

const (
	SeniorityJunior    Seniority = "Junior"
	SeniorityMid       Seniority = "Mid-level"
	SenioritySenior    Seniority = "Senior"
	SeniorityLead      Seniority = "Lead"
	SeniorityDirector  Seniority = "Director"
	SeniorityExecutive Seniority = "Executive"
)

// IsValid checks if the Seniority is a valid enum value
func (s Seniority) IsValid() bool {
	switch s {
	case SeniorityJunior, SeniorityMid, SenioritySenior,
		SeniorityLead, SeniorityDirector, SeniorityExecutive:
		return true
	}
	return false
}

// Personnel represents an individual attached to exactly one partner.
// PartnerName and PartnerStatus are denormalized copies of the referenced
// partner record; the service layer keeps them in sync on partner updates.
type Personnel struct {
	ID               string             `gorm:"type:varchar(64);primaryKey" json:"id"`
	PartnerType      PartnerAffiliation `gorm:"type:varchar(20);not null;column:partner_type" json:"partnerType" validate:"required,oneof=internal external"`
	PartnerID        string             `gorm:"type:varchar(64);not null;index;column:partner_id" json:"partnerId" validate:"required"`
	PartnerName      string             `gorm:"type:varchar(200);column:partner_name" json:"partnerName,omitempty"`
	PartnerStatus    string             `gorm:"type:varchar(50);column:partner_status" json:"partnerStatus,omitempty"`
	FullName         string             `gorm:"type:varchar(200);not null;index;column:full_name" json:"fullName" validate:"required"`
	JobTitle         string             `gorm:"type:varchar(200);not null;column:job_title" json:"jobTitle" validate:"required"`
	EmailAddress     string             `gorm:"type:varchar(255);not null;column:email_address" json:"emailAddress" validate:"required,email"`
	PhoneNumber      string             `gorm:"type:varchar(50);column:phone_number" json:"phoneNumber,omitempty" validate:"omitempty,loosephone"`
	Department       Department         `gorm:"type:varchar(100);column:department" json:"department,omitempty" validate:"omitempty,oneof=Programs Finance Operations 'Human Resources' IT Compliance Other"`
	Seniority        Seniority          `gorm:"type:varchar(50);column:seniority" json:"seniority,omitempty" validate:"omitempty,oneof=Junior Mid-level Senior Lead Director Executive"`
	WorkStatus       WorkStatus         `gorm:"type:varchar(50);not null;default:'Active';column:work_status" json:"workStatus" validate:"omitempty,oneof=Active 'On Leave' Inactive Terminated"`
	Responsibilities string             `gorm:"type:text" json:"responsibilities,omitempty"`
	Skills           string             `gorm:"type:text" json:"skills,omitempty"`
	Notes            string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt        time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt        time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName overrides GORM's pluralization for the personnel table
func (Personnel) TableName() string {
	return "personnel"
}

// Normalize trims string fields, lower-cases the email address, and
// applies the default work status. Idempotent.
func (p *Personnel) Normalize() {
	p.ID = strings.TrimSpace(p.ID)
	p.PartnerType = PartnerAffiliation(strings.ToLower(strings.TrimSpace(string(p.PartnerType))))
	p.PartnerID = strings.TrimSpace(p.PartnerID)
	p.PartnerName = strings.TrimSpace(p.PartnerName)
	p.PartnerStatus = strings.TrimSpace(p.PartnerStatus)
	p.FullName = strings.TrimSpace(p.FullName)
	p.JobTitle = strings.TrimSpace(p.JobTitle)
	p.EmailAddress = strings.ToLower(strings.TrimSpace(p.EmailAddress))
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)
	p.Responsibilities = strings.TrimSpace(p.Responsibilities)
	p.Skills = strings.TrimSpace(p.Skills)
	p.Notes = strings.TrimSpace(p.Notes)
	if p.WorkStatus == "" {
		p.WorkStatus = WorkStatusActive
	}
}

// MatchesSearch reports whether the record matches a case-insensitive
// substring search across name, title, email, department, partner name,
// skills and responsibilities. An empty term matches every record.
func (p *Personnel) MatchesSearch(term string) bool {
	return matchesAny(term,
		p.FullName,
		p.JobTitle,
		p.EmailAddress,
		string(p.Department),
		p.PartnerName,
		p.Skills,
		p.Responsibilities,
	)
}

// DeliverableStatus represents the caller-driven status of a deliverable.
// Any status may follow any other; there is no enforced state machine.
type DeliverableStatus string

const (
	DeliverableNotStarted DeliverableStatus = "not-started"
	DeliverableInProgress DeliverableStatus = "in-progress"
	DeliverableInReview   DeliverableStatus = "review"
	DeliverableCompleted  DeliverableStatus = "completed"
	DeliverableOverdue    DeliverableStatus = "overdue"
)

// IsValid checks if the DeliverableStatus is a valid enum value
func (ds DeliverableStatus) IsValid() bool {
	switch ds {
	case DeliverableNotStarted, DeliverableInProgress, DeliverableInReview,
		DeliverableCompleted, DeliverableOverdue:
		return true
	}
	return false
}

// DeliverablePriority represents the priority of a deliverable
type DeliverablePriority string

const (
	PriorityLow      DeliverablePriority = "low"
	PriorityMedium   DeliverablePriority = "medium"
	PriorityHigh     DeliverablePriority = "high"
	PriorityCritical DeliverablePriority = "critical"
)

// IsValid checks if the DeliverablePriority is a valid enum value
func (dp DeliverablePriority) IsValid() bool {
	switch dp {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// DateLayout is the wire format for deliverable due dates
const DateLayout = "2006-01-02"

// Deliverable represents a unit of work owed by a partner. DueDate is kept
// in ISO YYYY-MM-DD form so both backends store the identical value.
type Deliverable struct {
	ID                   string              `gorm:"type:varchar(64);primaryKey" json:"id"`
	DeliverableName      string              `gorm:"type:varchar(200);not null;index;column:deliverable_name" json:"deliverableName" validate:"required"`
	PartnerID            string              `gorm:"type:varchar(64);index;column:partner_id" json:"partnerId,omitempty"`
	PartnerName          string              `gorm:"type:varchar(200);not null;column:partner_name" json:"partnerName" validate:"required"`
	Description          string              `gorm:"type:text" json:"description,omitempty"`
	DueDate              string              `gorm:"type:varchar(10);not null;column:due_date" json:"dueDate" validate:"required,dateonly"`
	AssignedTo           string              `gorm:"type:varchar(200);not null;column:assigned_to" json:"assignedTo" validate:"required"`
	Status               DeliverableStatus   `gorm:"type:varchar(50);not null;default:'not-started'" json:"status" validate:"omitempty,oneof=not-started in-progress review completed overdue"`
	Priority             DeliverablePriority `gorm:"type:varchar(50);not null;default:'medium'" json:"priority" validate:"omitempty,oneof=low medium high critical"`
	CompletionPercentage int                 `gorm:"not null;default:0;column:completion_percentage" json:"completionPercentage" validate:"gte=0,lte=100"`
	CreatedAt            time.Time           `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt            time.Time           `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// Normalize trims string fields, applies status/priority defaults, and
// clamps the completion percentage to [0,100]. Idempotent.
func (d *Deliverable) Normalize() {
	d.ID = strings.TrimSpace(d.ID)
	d.DeliverableName = strings.TrimSpace(d.DeliverableName)
	d.PartnerID = strings.TrimSpace(d.PartnerID)
	d.PartnerName = strings.TrimSpace(d.PartnerName)
	d.Description = strings.TrimSpace(d.Description)
	d.DueDate = strings.TrimSpace(d.DueDate)
	d.AssignedTo = strings.TrimSpace(d.AssignedTo)
	if d.Status == "" {
		d.Status = DeliverableNotStarted
	}
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	if d.CompletionPercentage < 0 {
		d.CompletionPercentage = 0
	}
	if d.CompletionPercentage > 100 {
		d.CompletionPercentage = 100
	}
}

// Due returns the parsed due date. The boolean is false when the stored
// value does not parse as a calendar date.
func (d *Deliverable) Due() (time.Time, bool) {
	t, err := time.Parse(DateLayout, d.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsOverdue is derived on every read and never persisted: true iff the
// due date is before now and the deliverable is not completed.
func (d *Deliverable) IsOverdue(now time.Time) bool {
	if d.Status == DeliverableCompleted {
		return false
	}
	due, ok := d.Due()
	if !ok {
		return false
	}
	return due.Before(now.Truncate(24 * time.Hour))
}

// DaysUntilDue returns the whole days between now and the due date,
// negative when the date has passed. Returns 0 for unparseable dates.
func (d *Deliverable) DaysUntilDue(now time.Time) int {
	due, ok := d.Due()
	if !ok {
		return 0
	}
	return int(due.Sub(now.Truncate(24 * time.Hour)).Hours() / 24)
}

// MatchesSearch reports whether the deliverable matches a case-insensitive
// substring search. An empty term matches every record.
func (d *Deliverable) MatchesSearch(term string) bool {
	return matchesAny(term,
		d.DeliverableName,
		d.PartnerName,
		d.AssignedTo,
		d.Description,
		string(d.Status),
	)
}

func matchesAny(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func splitLabels(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}
	return labels
}

func joinLabels(labels []string) string {
	return strings.Join(labels, ", ")
}
