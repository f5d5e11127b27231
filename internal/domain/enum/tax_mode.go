package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TaxMode represents how tax is applied to a financial document.
type TaxMode int

const (
	TaxModeDisabled   TaxMode = 0
	TaxModeDualRate   TaxMode = 1
	TaxModeCustomRate TaxMode = 2
)

func (m TaxMode) String() string {
	names := [...]string{"Disabled", "DualRate", "CustomRate"}
	if int(m) < 0 || int(m) >= len(names) {
		return "Disabled"
	}
	return names[m]
}

func (m TaxMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *TaxMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = TaxMode(i)
		return nil
	}
	switch str {
	case "Disabled":
		*m = TaxModeDisabled
	case "DualRate":
		*m = TaxModeDualRate
	case "CustomRate":
		*m = TaxModeCustomRate
	}
	return nil
}

func (m TaxMode) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *TaxMode) Scan(value interface{}) error {
	if value == nil {
		*m = TaxModeDisabled
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = TaxMode(v)
	case int:
		*m = TaxMode(v)
	}
	return nil
}
