package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Messages shared by every validator so clients see one vocabulary.
const (
	MsgRequired   = "This field is required."
	MsgBlank      = "This field may not be blank."
	MsgDateFormat = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	MsgWrongType  = "Incorrect type."
)

// FieldErrors maps a field name to its validation messages. It is returned
// as an error when input is rejected before anything is written.
type FieldErrors map[string][]string

// Add records msg against field.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Merge copies the messages of other for fields fe does not report yet.
// A field that failed to decode keeps only its decode message.
func (fe FieldErrors) Merge(other FieldErrors) {
	for field, msgs := range other {
		if _, ok := fe[field]; ok {
			continue
		}
		fe[field] = append(fe[field], msgs...)
	}
}

// Err returns fe as an error, or nil when no field failed.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(fe[f], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// MaxLengthMsg is the message for a value longer than max characters.
func MaxLengthMsg(max int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", max)
}

// ChoiceMsg is the message for a value outside an enumeration.
func ChoiceMsg(value string) string {
	return fmt.Sprintf("%q is not a valid choice.", value)
}

// InvalidPKMsg is the message for a reference to a missing record.
func InvalidPKMsg(pk string) string {
	return fmt.Sprintf("Invalid pk %q - object does not exist.", pk)
}
