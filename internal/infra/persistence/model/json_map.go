package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// JSONMap maps a jsonb column to a generic object.
type JSONMap map[string]any

// Value implements driver.Valuer. A nil map is stored as SQL NULL.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}

	raw, err := json.Marshal(map[string]any(m))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode jsonb value")
	}

	return string(raw), nil
}

// Scan implements sql.Scanner.
func (m *JSONMap) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*m = nil

		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("unsupported jsonb source type %T", src)
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return errors.Wrap(err, "failed to decode jsonb value")
	}
	*m = out

	return nil
}

// GormDataType tells gorm the column type for migrations and casts.
func (JSONMap) GormDataType() string {
	return "jsonb"
}
