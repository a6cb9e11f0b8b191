package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Numeric holds a form value that may arrive either as a JSON number or as a
// string (browser FormData serialises every field as a string). The raw text is
// kept so the validator can judge it; conversion happens after validation.
type Numeric string

func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*n = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("numeric: %w", err)
		}

		*n = Numeric(strings.TrimSpace(s))

		return nil
	}

	if len(data) > 0 && data[0] == '{' || len(data) > 0 && data[0] == '[' {
		return fmt.Errorf("numeric: unexpected JSON value %s", data)
	}

	*n = Numeric(data)

	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	if i, err := n.Int64(); err == nil {
		return []byte(strconv.FormatInt(i, 10)), nil
	}

	return json.Marshal(string(n))
}

// Int64 parses the value as a base-10 integer.
func (n Numeric) Int64() (int64, error) {
	i, err := strconv.ParseInt(string(n), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("numeric %q: %w", string(n), err)
	}

	return i, nil
}

// Int is Int64 narrowed to int.
func (n Numeric) Int() (int, error) {
	i, err := strconv.Atoi(string(n))
	if err != nil {
		return 0, fmt.Errorf("numeric %q: %w", string(n), err)
	}

	return i, nil
}
