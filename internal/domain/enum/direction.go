package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// StockDirection is the direction of a stock movement.
type StockDirection string

const (
	StockDirectionIn  StockDirection = "in"
	StockDirectionOut StockDirection = "out"
)

// IsValid reports whether d is a known stock direction.
func (d StockDirection) IsValid() bool {
	return d == StockDirectionIn || d == StockDirectionOut
}

// Sign returns +1 for inbound movements and -1 for outbound ones, so that
// currentStock == initialStock + sum(sign * quantity) over all movements.
func (d StockDirection) Sign() int {
	if d == StockDirectionOut {
		return -1
	}
	return 1
}

func (d StockDirection) String() string {
	return string(d)
}

func (d StockDirection) Value() (driver.Value, error) {
	return string(d), nil
}

func (d *StockDirection) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*d = StockDirection(v)
	case []byte:
		*d = StockDirection(string(v))
	}
	return nil
}

// LedgerDirection is the direction of a ledger posting from the vendor's
// point of view: "in" is money received, "out" is value given out (credit
// extended, goods on credit, payment made to a supplier).
type LedgerDirection string

const (
	LedgerDirectionIn  LedgerDirection = "in"
	LedgerDirectionOut LedgerDirection = "out"
)

// IsValid reports whether d is a known ledger direction.
func (d LedgerDirection) IsValid() bool {
	return d == LedgerDirectionIn || d == LedgerDirectionOut
}

func (d LedgerDirection) String() string {
	return string(d)
}

func (d LedgerDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(d))
}

func (d *LedgerDirection) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*d = LedgerDirection(str)
	return nil
}

func (d LedgerDirection) Value() (driver.Value, error) {
	return string(d), nil
}

func (d *LedgerDirection) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*d = LedgerDirection(v)
	case []byte:
		*d = LedgerDirection(string(v))
	}
	return nil
}

// PartyType distinguishes which side of the khata a posting belongs to.
type PartyType string

const (
	PartyTypeCustomer PartyType = "customer"
	PartyTypeSupplier PartyType = "supplier"
)

func (p PartyType) String() string {
	return string(p)
}
