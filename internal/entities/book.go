package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type ReadingStatus string

const (
	StatusToRead   ReadingStatus = "to-read"
	StatusReading  ReadingStatus = "reading"
	StatusFinished ReadingStatus = "finished"
)

// Valid reports whether s is one of the known reading statuses.
func (s ReadingStatus) Valid() bool {
	switch s {
	case StatusToRead, StatusReading, StatusFinished:
		return true
	}
	return false
}

// StringList stores an ordered list of strings as a JSON array in a TEXT
// column, which keeps tag order and lets sqlite's json_each filter on
// membership.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// Book is a single record in the personal reading collection.
//
// JSON field names are part of the API contract and deliberately camelCase,
// matching what existing clients expect (createdAt, not created_at).
type Book struct {
	ID        string        `gorm:"primaryKey;size:36" json:"id"`
	Title     string        `gorm:"index;size:512" json:"title"`
	Author    string        `gorm:"index;size:256" json:"author"`
	Status    ReadingStatus `gorm:"index;size:20;default:'to-read'" json:"status"`
	Rating    *float64      `json:"rating,omitempty"`
	Notes     string        `gorm:"type:text" json:"notes"`
	Tags      StringList    `gorm:"type:text" json:"tags"`
	CreatedAt time.Time     `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
