package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleStaff.Valid())
	assert.True(t, RoleDevotee.Valid())
	assert.False(t, AppRole("superuser").Valid())
	assert.False(t, AppRole("").Valid())
}

func TestPoojaStatusValid(t *testing.T) {
	for _, s := range []PoojaStatus{StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, PoojaStatus("done").Valid())
	assert.False(t, PoojaStatus("Scheduled").Valid(), "enum literals are case sensitive")
}

func TestTransactionTypeValid(t *testing.T) {
	for _, tt := range []TransactionType{TxnDonation, TxnPoojaFee, TxnPrasadam, TxnOther} {
		assert.True(t, tt.Valid(), string(tt))
	}
	assert.False(t, TransactionType("refund").Valid())
}

func TestFrequencyValid(t *testing.T) {
	for _, f := range []Frequency{FreqDaily, FreqWeekly, FreqMonthly, FreqYearly} {
		assert.True(t, f.Valid(), string(f))
	}
	assert.False(t, Frequency("fortnightly").Valid())
}

func TestCheckEnum(t *testing.T) {
	assert.NoError(t, CheckEnum("transaction_type", true, "donation"))

	err := CheckEnum("transaction_type", false, "refund")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "transaction_type")
	assert.Contains(t, err.Error(), "refund")
}
