package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DueDateInput is the raw dueDate of a request body. JSON numbers are taken as
// epoch milliseconds and normalized to an RFC3339 timestamp.
type DueDateInput string

func (d *DueDateInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = DueDateInput(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("dueDate must be a string or a number: %w", err)
	}
	ms, err := n.Float64()
	if err != nil {
		return fmt.Errorf("dueDate must be a string or a number: %w", err)
	}
	*d = DueDateInput(time.UnixMilli(int64(ms)).UTC().Format(time.RFC3339Nano))
	return nil
}

func (d *DueDateInput) UnmarshalText(text []byte) error {
	*d = DueDateInput(text)
	return nil
}

func (d DueDateInput) String() string {
	return string(d)
}
