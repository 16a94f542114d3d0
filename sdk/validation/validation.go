// Package validation holds small helpers shared by input validation code:
// pointer constructors, field keyed error collections and date handling.
package validation

func StringPtr(s string) *string {
	return &s
}

func BoolPtr(b bool) *bool {
	return &b
}

// GetStringOrEmpty returns the string value or an empty string if nil.
func GetStringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetBoolOrFalse returns the bool value or false if nil.
func GetBoolOrFalse(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
