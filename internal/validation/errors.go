package validation

import "strings"

// FieldError is one failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Rule    Kind   `json:"rule"`
	Message string `json:"message"`
}

// Errors is the ordered list of failed rules for a submission. It is the
// client-correctable error kind: nothing was persisted.
type Errors []FieldError

func (e Errors) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), "; ")
}

// Messages returns the human-readable messages in order.
func (e Errors) Messages() []string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return msgs
}

// Fields returns the failing field names in order.
func (e Errors) Fields() []string {
	names := make([]string, len(e))
	for i, fe := range e {
		names[i] = fe.Field
	}
	return names
}
