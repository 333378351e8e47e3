package domain

// Partial update payloads. Nil fields are left untouched; set fields win
// last-write-wins with no optimistic-concurrency check.

// PartnerUpdate carries a partial partner update
type PartnerUpdate struct {
	PartnerName        *string         `json:"partnerName,omitempty"`
	PartnerType        *string         `json:"partnerType,omitempty"`
	ContactEmail       *string         `json:"contactEmail,omitempty"`
	ContactPhone       *string         `json:"contactPhone,omitempty"`
	RegionsOfOperation *string         `json:"regionsOfOperation,omitempty"`
	KeyPersonnel       *string         `json:"keyPersonnel,omitempty"`
	ContractStatus     *ContractStatus `json:"contractStatus,omitempty"`
	ContractValue      *float64        `json:"contractValue,omitempty"`
	BudgetAllocated    *float64        `json:"budgetAllocated,omitempty"`
	ActualSpent        *float64        `json:"actualSpent,omitempty"`
	Q1Paid             *float64        `json:"q1Paid,omitempty"`
	Q2Paid             *float64        `json:"q2Paid,omitempty"`
	Q3Paid             *float64        `json:"q3Paid,omitempty"`
	Q4Paid             *float64        `json:"q4Paid,omitempty"`
}

// ApplyTo merges the set fields into the partner record
func (u *PartnerUpdate) ApplyTo(p *Partner) {
	if u.PartnerName != nil {
		p.PartnerName = *u.PartnerName
	}
	if u.PartnerType != nil {
		p.PartnerType = *u.PartnerType
	}
	if u.ContactEmail != nil {
		p.ContactEmail = *u.ContactEmail
	}
	if u.ContactPhone != nil {
		p.ContactPhone = *u.ContactPhone
	}
	if u.RegionsOfOperation != nil {
		p.RegionsOfOperation = *u.RegionsOfOperation
	}
	if u.KeyPersonnel != nil {
		p.KeyPersonnel = *u.KeyPersonnel
	}
	if u.ContractStatus != nil {
		p.ContractStatus = *u.ContractStatus
	}
	if u.ContractValue != nil {
		p.ContractValue = *u.ContractValue
	}
	if u.BudgetAllocated != nil {
		p.BudgetAllocated = *u.BudgetAllocated
	}
	if u.ActualSpent != nil {
		p.ActualSpent = *u.ActualSpent
	}
	if u.Q1Paid != nil {
		p.Q1Paid = *u.Q1Paid
	}
	if u.Q2Paid != nil {
		p.Q2Paid = *u.Q2Paid
	}
	if u.Q3Paid != nil {
		p.Q3Paid = *u.Q3Paid
	}
	if u.Q4Paid != nil {
		p.Q4Paid = *u.Q4Paid
	}
}

// PersonnelUpdate carries a partial personnel update. Setting PartnerID
// reassigns the record; the service refreshes the denormalized partner
// fields as part of the same write.
type PersonnelUpdate struct {
	PartnerType      *PartnerAffiliation `json:"partnerType,omitempty"`
	PartnerID        *string             `json:"partnerId,omitempty"`
	FullName         *string             `json:"fullName,omitempty"`
	JobTitle         *string             `json:"jobTitle,omitempty"`
	EmailAddress     *string             `json:"emailAddress,omitempty"`
	PhoneNumber      *string             `json:"phoneNumber,omitempty"`
	Department       *Department         `json:"department,omitempty"`
	Seniority        *Seniority          `json:"seniority,omitempty"`
	WorkStatus       *WorkStatus         `json:"workStatus,omitempty"`
	Responsibilities *string             `json:"responsibilities,omitempty"`
	Skills           *string             `json:"skills,omitempty"`
	Notes            *string             `json:"notes,omitempty"`
}

// ApplyTo merges the set fields into the personnel record
func (u *PersonnelUpdate) ApplyTo(p *Personnel) {
	if u.PartnerType != nil {
		p.PartnerType = *u.PartnerType
	}
	if u.PartnerID != nil {
		p.PartnerID = *u.PartnerID
	}
	if u.FullName != nil {
		p.FullName = *u.FullName
	}
	if u.JobTitle != nil {
		p.JobTitle = *u.JobTitle
	}
	if u.EmailAddress != nil {
		p.EmailAddress = *u.EmailAddress
	}
	if u.PhoneNumber != nil {
		p.PhoneNumber = *u.PhoneNumber
	}
	if u.Department != nil {
		p.Department = *u.Department
	}
	if u.Seniority != nil {
		p.Seniority = *u.Seniority
	}
	if u.WorkStatus != nil {
		p.WorkStatus = *u.WorkStatus
	}
	if u.Responsibilities != nil {
		p.Responsibilities = *u.Responsibilities
	}
	if u.Skills != nil {
		p.Skills = *u.Skills
	}
	if u.Notes != nil {
		p.Notes = *u.Notes
	}
}

// DeliverableUpdate carries a partial deliverable update
type DeliverableUpdate struct {
	DeliverableName      *string              `json:"deliverableName,omitempty"`
	PartnerID            *string              `json:"partnerId,omitempty"`
	PartnerName          *string              `json:"partnerName,omitempty"`
	Description          *string              `json:"description,omitempty"`
	DueDate              *string              `json:"dueDate,omitempty"`
	AssignedTo           *string              `json:"assignedTo,omitempty"`
	Status               *DeliverableStatus   `json:"status,omitempty"`
	Priority             *DeliverablePriority `json:"priority,omitempty"`
	CompletionPercentage *int                 `json:"completionPercentage,omitempty"`
}

// ApplyTo merges the set fields into the deliverable record
func (u *DeliverableUpdate) ApplyTo(d *Deliverable) {
	if u.DeliverableName != nil {
		d.DeliverableName = *u.DeliverableName
	}
	if u.PartnerID != nil {
		d.PartnerID = *u.PartnerID
	}
	if u.PartnerName != nil {
		d.PartnerName = *u.PartnerName
	}
	if u.Description != nil {
		d.Description = *u.Description
	}
	if u.DueDate != nil {
		d.DueDate = *u.DueDate
	}
	if u.AssignedTo != nil {
		d.AssignedTo = *u.AssignedTo
	}
	if u.Status != nil {
		d.Status = *u.Status
	}
	if u.Priority != nil {
		d.Priority = *u.Priority
	}
	if u.CompletionPercentage != nil {
		d.CompletionPercentage = *u.CompletionPercentage
	}
}
