// Package payload decodes individual request body fields. Form bodies
// arrive as strings, so every decoder accepts the string form of its type.
// Absent fields decode to nil; malformed ones are recorded in a
// validation.FieldErrors keyed by field name.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jrazmi/join/sdk/validation"
)

const (
	MsgNull        = "This field may not be null."
	MsgInvalidBool = "Must be a valid boolean."
	MsgNotAString  = "Not a valid string."
)

// Field is one raw JSON value of a request body.
type Field = json.RawMessage

func isNull(raw Field) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// jsonType names the JSON kind of raw the way error messages report it.
func jsonType(raw Field) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "str"
	}
	switch raw[0] {
	case '"':
		return "str"
	case 't', 'f':
		return "bool"
	case '[':
		return "list"
	case '{':
		return "dict"
	default:
		return "float"
	}
}

// String decodes a text field. Numbers are accepted and kept in their
// literal form.
func String(fe validation.FieldErrors, field string, raw Field) *string {
	if raw == nil {
		return nil
	}
	if isNull(raw) {
		fe.Add(field, MsgNull)
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		s = n.String()
		return &s
	}

	fe.Add(field, MsgNotAString)
	return nil
}

// Choice decodes a text field into an enumeration type. Membership is
// checked by the repository.
func Choice[T ~string](fe validation.FieldErrors, field string, raw Field) *T {
	s := String(fe, field, raw)
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}

// Bool decodes a boolean field, accepting true/false and their common
// string spellings.
func Bool(fe validation.FieldErrors, field string, raw Field) *bool {
	if raw == nil {
		return nil
	}
	if isNull(raw) {
		fe.Add(field, MsgNull)
		return nil
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return &b
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "t", "yes", "y", "on", "1":
			b = true
			return &b
		case "false", "f", "no", "n", "off", "0":
			b = false
			return &b
		}
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		switch n.String() {
		case "1":
			b = true
			return &b
		case "0":
			return &b
		}
	}

	fe.Add(field, MsgInvalidBool)
	return nil
}

// PK decodes a reference to another record by id. A numeric string is
// accepted.
func PK(fe validation.FieldErrors, field string, raw Field) *int64 {
	if raw == nil {
		return nil
	}
	if isNull(raw) {
		fe.Add(field, MsgNull)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if id, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
			return &id
		}
		fe.Add(field, IncorrectTypeMsg(jsonType(raw)))
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return &id
		}
	}

	fe.Add(field, IncorrectTypeMsg(jsonType(raw)))
	return nil
}

// Date decodes a YYYY-MM-DD date field.
func Date(fe validation.FieldErrors, field string, raw Field) *time.Time {
	if raw == nil {
		return nil
	}
	if isNull(raw) {
		fe.Add(field, MsgNull)
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		fe.Add(field, validation.MsgDateFormat)
		return nil
	}
	return validation.CheckDate(fe, field, &s)
}

// IncorrectTypeMsg is the message for a pk field holding a value of the
// named kind.
func IncorrectTypeMsg(kind string) string {
	return fmt.Sprintf("%s Expected pk value, received %s.", validation.MsgWrongType, kind)
}
