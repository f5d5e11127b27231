package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PayrollStatus represents the payment state of a payroll record.
type PayrollStatus int

const (
	PayrollStatusPending PayrollStatus = 0
	PayrollStatusPaid    PayrollStatus = 1
)

func (s PayrollStatus) String() string {
	names := [...]string{"Pending", "Paid"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Pending"
	}
	return names[s]
}

func (s PayrollStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PayrollStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PayrollStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = PayrollStatusPending
	case "Paid":
		*s = PayrollStatusPaid
	}
	return nil
}

func (s PayrollStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PayrollStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PayrollStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PayrollStatus(v)
	case int:
		*s = PayrollStatus(v)
	}
	return nil
}
