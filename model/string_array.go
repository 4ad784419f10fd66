package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/mattermost/mattermost-boardsync/workflow"
)

// StringArray type to load and save []string in mysql column as json using sqlx
type StringArray []string

// Value converts StringArray to database value
func (sa StringArray) Value() (driver.Value, error) {
	if sa == nil {
		return "[]", nil
	}
	b, err := json.Marshal(sa)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan converts database column value to StringArray
func (sa *StringArray) Scan(value interface{}) error {
	buf, err := jsonColumn(value)
	if err != nil || buf == nil {
		return err
	}
	return json.Unmarshal(buf, sa)
}

// MentionList stores merged issue mentions in a json column.
type MentionList []workflow.Mention

// Value converts MentionList to database value
func (ml MentionList) Value() (driver.Value, error) {
	if ml == nil {
		return "[]", nil
	}
	b, err := json.Marshal(ml)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan converts database column value to MentionList
func (ml *MentionList) Scan(value interface{}) error {
	buf, err := jsonColumn(value)
	if err != nil || buf == nil {
		return err
	}
	return json.Unmarshal(buf, ml)
}

func jsonColumn(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("received value is not a byte slice")
	}
}
