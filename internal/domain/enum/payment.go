package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentType represents how the buyer chose to settle a checkout.
type PaymentType string

const (
	// PaymentTypeFull collects the whole grand total at checkout.
	PaymentTypeFull PaymentType = "full"
	// PaymentTypePartial collects a user-supplied amount, the rest becomes due.
	PaymentTypePartial PaymentType = "partial"
	// PaymentTypeCredit collects nothing; the full amount becomes due.
	PaymentTypeCredit PaymentType = "credit"
)

// IsValid reports whether t is one of the known payment types.
func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypeFull, PaymentTypePartial, PaymentTypeCredit:
		return true
	}
	return false
}

func (t PaymentType) String() string {
	return string(t)
}

// PaymentStatus is derived from paid vs grand total, never set directly.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusCredit  PaymentStatus = "credit"
)

// DerivePaymentStatus applies the derivation rule: paid when the collected
// amount covers the grand total, credit when nothing was collected, partial
// otherwise.
func DerivePaymentStatus(paid, grandTotal int64) PaymentStatus {
	switch {
	case paid >= grandTotal:
		return PaymentStatusPaid
	case paid == 0:
		return PaymentStatusCredit
	default:
		return PaymentStatusPartial
	}
}

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = PaymentStatus(str)
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusCredit
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = PaymentStatus(v)
	case []byte:
		*s = PaymentStatus(string(v))
	}
	return nil
}
