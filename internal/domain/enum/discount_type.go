package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountType represents how a coupon or manual discount is computed.
type DiscountType string

const (
	// DiscountTypePercentage interprets the value as whole percent of the subtotal.
	DiscountTypePercentage DiscountType = "percentage"
	// DiscountTypeFixed interprets the value as minor currency units.
	DiscountTypeFixed DiscountType = "fixed"
)

// IsValid reports whether t is a known discount type.
func (t DiscountType) IsValid() bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}

func (t DiscountType) String() string {
	return string(t)
}

func (t DiscountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *DiscountType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = DiscountType(str)
	return nil
}

func (t DiscountType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *DiscountType) Scan(value interface{}) error {
	if value == nil {
		*t = DiscountTypeFixed
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = DiscountType(v)
	case []byte:
		*t = DiscountType(string(v))
	}
	return nil
}
