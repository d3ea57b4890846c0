package rexapi

import (
	"encoding/json"
	"fmt"
)

// FieldValue holds a configuration value that is either a scalar string or
// an ordered list of strings, mirroring the backend's loose value typing.
type FieldValue struct {
	Scalar string
	List   []string
	IsList bool
}

// StringValue builds a scalar FieldValue.
func StringValue(s string) FieldValue {
	return FieldValue{Scalar: s}
}

// ListValue builds a list FieldValue. An empty (or nil) list is valid and
// encodes as [].
func ListValue(items []string) FieldValue {
	return FieldValue{List: items, IsList: true}
}

// Empty reports whether the value carries no data in either shape.
func (v FieldValue) Empty() bool {
	if v.IsList {
		return len(v.List) == 0
	}
	return v.Scalar == ""
}

// UnmarshalJSON accepts a JSON string, an array of strings, or null.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	*v = FieldValue{}
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("decode value list: %w", err)
		}
		v.List = items
		v.IsList = true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode value: %w", err)
	}
	v.Scalar = s
	return nil
}

// MarshalJSON encodes back in kind: lists as arrays (never null), scalars as
// strings.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	if v.IsList {
		items := v.List
		if items == nil {
			items = []string{}
		}
		return json.Marshal(items)
	}
	return json.Marshal(v.Scalar)
}

// Field is one named configuration attribute held by the backend.
type Field struct {
	Name  string     `json:"field"`
	Value FieldValue `json:"value"`
}

// ScheduleEntry is a single weekly on-air slot.
type ScheduleEntry struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Presenter is an on-air persona with its weekly schedule. Roles is optional
// and omitted from the wire when empty.
type Presenter struct {
	Name      string          `json:"name"`
	VoiceID   string          `json:"voice_id"`
	ModelID   string          `json:"model_id"`
	Schedules []ScheduleEntry `json:"schedules"`
	Roles     []string        `json:"roles,omitempty"`
}

// StatusError reports a backend response outside the documented success
// codes. Body carries the raw response text for operator display.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: HTTP %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.Status, e.Body)
}
