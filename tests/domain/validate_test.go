package domain_test

import (
	"errors"
	"testing"

	"github.com/partnerdesk/partner-api/internal/domain"
	"github.com/partnerdesk/partner-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartner_ValidateCollectsAllErrors(t *testing.T) {
	p := &domain.Partner{}
	result := p.Validate()

	assert.False(t, result.IsValid)
	// one message per missing required field, not just the first
	assert.GreaterOrEqual(t, len(result.Errors), 3)

	err := result.Err()
	require.Error(t, err)
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, result.Errors, ve.Messages)
}

func TestPartner_ValidateValid(t *testing.T) {
	p := testutil.ValidPartner("Acme Relief")
	result := p.Validate()

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.NoError(t, result.Err())
}

func TestPartner_ValidateRejectsBadEmailAndStatus(t *testing.T) {
	p := testutil.ValidPartner("Acme Relief")
	p.ContactEmail = "not-an-email"
	p.ContractStatus = "cancelled"

	result := p.Validate()
	assert.False(t, result.IsValid)
	assert.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors, "ContactEmail must be a valid email address")
	assert.Contains(t, result.Errors, "ContractStatus must be one of the allowed values")
}

func TestPartner_ValidatePhone(t *testing.T) {
	p := testutil.ValidPartner("Acme Relief")

	for _, phone := range []string{"+47 22 33 44 55", "555 123-4567", "5551234567"} {
		p.ContactPhone = phone
		assert.True(t, p.Validate().IsValid, "expected %q to be accepted", phone)
	}

	for _, phone := range []string{"abc", "12", "+"} {
		p.ContactPhone = phone
		assert.False(t, p.Validate().IsValid, "expected %q to be rejected", phone)
	}

	// phone is optional
	p.ContactPhone = ""
	assert.True(t, p.Validate().IsValid)
}

func TestPersonnel_ValidateMultiWordEnums(t *testing.T) {
	p := testutil.ValidPersonnel("partner-1", "Dana Reyes")
	p.Department = domain.DepartmentHR
	p.WorkStatus = domain.WorkStatusOnLeave
	assert.True(t, p.Validate().IsValid)

	p.Department = "Payroll"
	result := p.Validate()
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "Department must be one of the allowed values")
}

func TestPersonnel_ValidateRequiresAffiliationAndPartner(t *testing.T) {
	p := &domain.Personnel{
		FullName:     "Dana Reyes",
		JobTitle:     "Coordinator",
		EmailAddress: "dana@example.org",
	}
	result := p.Validate()

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "PartnerType is required")
	assert.Contains(t, result.Errors, "PartnerID is required")
}

func TestDeliverable_ValidateDueDate(t *testing.T) {
	d := testutil.ValidDeliverable("Q1 Report", "Acme Relief", "2026-03-31")
	assert.True(t, d.Validate().IsValid)

	for _, due := range []string{"31-03-2026", "2026/03/31", "tomorrow", "2026-13-01"} {
		d.DueDate = due
		result := d.Validate()
		assert.False(t, result.IsValid, "expected %q to be rejected", due)
		assert.Contains(t, result.Errors, "DueDate must be a valid date in YYYY-MM-DD format")
	}
}

func TestDeliverable_ValidateCompletionRange(t *testing.T) {
	d := testutil.ValidDeliverable("Q1 Report", "Acme Relief", "2026-03-31")

	d.CompletionPercentage = 101
	assert.False(t, d.Validate().IsValid)

	d.CompletionPercentage = -1
	assert.False(t, d.Validate().IsValid)

	d.CompletionPercentage = 100
	assert.True(t, d.Validate().IsValid)
}

func TestValidationError_Unwrap(t *testing.T) {
	err := error(&domain.ValidationError{Messages: []string{"PartnerName is required"}})

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"PartnerName is required"}, ve.Messages)
	assert.Equal(t, "validation failed: PartnerName is required", err.Error())

	_, ok = domain.AsValidationError(errors.New("boom"))
	assert.False(t, ok)
}

func TestGetValidationMessage(t *testing.T) {
	assert.Equal(t, "is required", domain.GetValidationMessage("required"))
	assert.Equal(t, "failed rule: uuid4", domain.GetValidationMessage("uuid4"))
}
