package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DocumentStatus represents the lifecycle state of a financial document
// (purchase order, goods receipt or proforma invoice).
type DocumentStatus int

const (
	DocumentStatusDraft     DocumentStatus = 0
	DocumentStatusIssued    DocumentStatus = 1
	DocumentStatusCompleted DocumentStatus = 2
	DocumentStatusCancelled DocumentStatus = 3
)

func (s DocumentStatus) String() string {
	names := [...]string{"Draft", "Issued", "Completed", "Cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Draft"
	}
	return names[s]
}

func (s DocumentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *DocumentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = DocumentStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = DocumentStatusDraft
	case "Issued":
		*s = DocumentStatusIssued
	case "Completed":
		*s = DocumentStatusCompleted
	case "Cancelled":
		*s = DocumentStatusCancelled
	}
	return nil
}

func (s DocumentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *DocumentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = DocumentStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = DocumentStatus(v)
	case int:
		*s = DocumentStatus(v)
	}
	return nil
}
