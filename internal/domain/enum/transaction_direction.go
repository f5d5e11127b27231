package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TransactionDirection represents whether a stock transaction adds to or
// removes from inventory.
type TransactionDirection string

const (
	TransactionDirectionIn  TransactionDirection = "IN"
	TransactionDirectionOut TransactionDirection = "OUT"
)

func (d TransactionDirection) String() string {
	return string(d)
}

func (d TransactionDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(d))
}

func (d *TransactionDirection) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*d = TransactionDirection(str)
	return nil
}

func (d TransactionDirection) Value() (driver.Value, error) {
	return string(d), nil
}

func (d *TransactionDirection) Scan(value interface{}) error {
	if value == nil {
		*d = TransactionDirectionIn
		return nil
	}
	switch v := value.(type) {
	case string:
		*d = TransactionDirection(v)
	case []byte:
		*d = TransactionDirection(string(v))
	}
	return nil
}
