package enum

import "database/sql/driver"

// ItemType distinguishes cart and bill lines that reference a stocked product
// from service lines which never touch inventory.
type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeService ItemType = "service"
)

// IsValid reports whether t is a known item type.
func (t ItemType) IsValid() bool {
	return t == ItemTypeProduct || t == ItemTypeService
}

func (t ItemType) String() string {
	return string(t)
}

func (t ItemType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *ItemType) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*t = ItemType(v)
	case []byte:
		*t = ItemType(string(v))
	}
	return nil
}
