package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSON backs the schemaless jsonb columns: user bank details and
// settings, withdrawal bank snapshots and transaction metadata.
type JSON map[string]interface{}

// GetString returns the value under key when it is a string, or "".
func (j JSON) GetString(key string) string {
	if s, ok := j[key].(string); ok {
		return s
	}
	return ""
}

// Value implements the driver.Valuer interface.
func (j JSON) Value() (driver.Value, error) {
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface.
func (j *JSON) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, (*map[string]interface{})(j))
}

func (j JSON) MarshalJSON() ([]byte, error) {
	if j == nil {
		return []byte("null"), nil
	}
	return json.Marshal(j)
}

func (j *JSON) UnmarshalJSON(data []byte) error {
	if j == nil {
		return errors.New("nil pointer")
	}
	return json.Unmarshal(data, (*map[string]interface{})(j))
}
