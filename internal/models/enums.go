package models

import "fmt"

// Enumerations mirror the database enum types. Values are validated before
// any write reaches the database, so an unrecognized literal fails fast
// instead of passing through.

type AppRole string

const (
	RoleAdmin   AppRole = "admin"
	RoleStaff   AppRole = "staff"
	RoleDevotee AppRole = "devotee"
)

func (r AppRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleDevotee:
		return true
	}
	return false
}

type PoojaStatus string

const (
	StatusScheduled  PoojaStatus = "scheduled"
	StatusInProgress PoojaStatus = "in_progress"
	StatusCompleted  PoojaStatus = "completed"
	StatusCancelled  PoojaStatus = "cancelled"
)

func (s PoojaStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type TransactionType string

const (
	TxnDonation TransactionType = "donation"
	TxnPoojaFee TransactionType = "pooja_fee"
	TxnPrasadam TransactionType = "prasadam"
	TxnOther    TransactionType = "other"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TxnDonation, TxnPoojaFee, TxnPrasadam, TxnOther:
		return true
	}
	return false
}

type Frequency string

const (
	FreqDaily   Frequency = "daily"
	FreqWeekly  Frequency = "weekly"
	FreqMonthly Frequency = "monthly"
	FreqYearly  Frequency = "yearly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FreqDaily, FreqWeekly, FreqMonthly, FreqYearly:
		return true
	}
	return false
}

// CheckEnum returns a descriptive error for an invalid enum literal
func CheckEnum(name string, valid bool, value any) error {
	if valid {
		return nil
	}
	return fmt.Errorf("invalid %s: %v", name, value)
}
