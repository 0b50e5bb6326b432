package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"chiragbattery/internal/domain"
)

const DefaultLimit = 50

// FieldError names one offending field of a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is returned when a request body breaks the record schema.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Error) add(field, msg string) {
	for _, f := range e.Fields {
		if f.Field == field {
			return
		}
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

func (e *Error) has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *Error) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// decodeObject unmarshals body into dst and reports which keys were present.
// Each known field is decoded on its own so every type mismatch is recorded
// on verr, not just the first.
func decodeObject(body []byte, dst any, verr *Error) (map[string]json.RawMessage, bool) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		var se *json.SyntaxError
		if errors.As(err, &se) || len(bytes.TrimSpace(body)) == 0 {
			verr.add("body", "invalid JSON")
		} else {
			verr.add("body", "must be a JSON object")
		}
		return nil, false
	}
	if raw == nil {
		verr.add("body", "must be a JSON object")
		return nil, false
	}
	for _, name := range domain.FieldNames(dst) {
		v, ok := raw[name]
		if !ok {
			continue
		}
		one, err := json.Marshal(map[string]json.RawMessage{name: v})
		if err != nil {
			verr.add(name, "invalid JSON")
			continue
		}
		if err := json.Unmarshal(one, dst); err != nil {
			var te *json.UnmarshalTypeError
			if errors.As(err, &te) {
				verr.add(name, "must be "+kind(te.Type.Kind().String()))
			} else {
				verr.add(name, "invalid value")
			}
		}
	}
	return raw, true
}

func kind(k string) string {
	switch k {
	case "string":
		return "a string"
	case "bool":
		return "a boolean"
	case "int", "int64":
		return "an integer"
	case "float64":
		return "a number"
	}
	return "a valid value"
}

func isNull(v json.RawMessage) bool {
	return string(bytes.TrimSpace(v)) == "null"
}

func oneOf(set []string) string {
	return fmt.Sprintf("must be one of %s", strings.Join(set, ", "))
}

// Limit parses the listing limit. Empty means DefaultLimit and zero means no
// cap. A negative limit caps at its absolute value, as MongoDB does.
func Limit(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLimit, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	if n < 0 {
		n = -n
	}
	return n, true
}
