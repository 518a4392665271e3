// Package form declares the validation descriptors of the web client
// forms: per field a rule list plus a localized error message per rule.
// Descriptors are built once at package initialization and never change.
package form

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/GoVideoHub/GoVideoHub/internal/constants"
)

// validate executes the rule tags. A single instance caches the parsed
// tags, as recommended by the library.
var validate = validator.New() //nolint:gochecknoglobals

// Field describes the validation of one form field.
type Field struct {
	Name     string            // field name as shown to the user
	Rules    string            // validator tag list, e.g. "required,max=120"
	Messages map[string]string // rule name to localized message
}

// RuleError is the user visible outcome of a failed rule.
type RuleError struct {
	Field   string
	Rule    string
	Message string
}

// Error returns the localized message.
func (e *RuleError) Error() string {
	return e.Message
}

// Validate checks value against the field rules. It returns a *RuleError
// carrying the localized message of the first failing rule, nil when the
// value is acceptable.
func (f Field) Validate(value string) error {
	err := validate.Var(value, f.Rules)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors) //nolint:errorlint
	if !ok || len(verrs) == 0 {
		return &RuleError{Field: f.Name, Rule: "invalid", Message: f.Name + " is invalid."}
	}

	rule := verrs[0].Tag()

	msg, found := f.Messages[rule]
	if !found {
		msg = f.Name + " is invalid."
	}

	return &RuleError{Field: f.Name, Rule: rule, Message: msg}
}

// lengthRules renders a required/min/max tag list from a constraint range.
func lengthRules(r constants.Range) string {
	return fmt.Sprintf("required,min=%d,max=%d", r.Min, r.Max)
}

// ChannelDisplayName validates the display name field of the channel
// create and update forms.
var ChannelDisplayName = Field{ //nolint:gochecknoglobals
	Name:  "Display name",
	Rules: lengthRules(constants.Fields.ChannelDisplayName),
	Messages: map[string]string{
		"required": "Display name is required.",
		"min":      "Display name must be at least 1 character long.",
		"max":      "Display name cannot be more than 120 characters long.",
	},
}

// ChannelName validates the channel handle used in URLs and federation.
var ChannelName = Field{ //nolint:gochecknoglobals
	Name:  "Name",
	Rules: lengthRules(constants.Fields.ChannelName) + ",alphanum,lowercase",
	Messages: map[string]string{
		"required":  "Name is required.",
		"min":       "Name must be at least 1 character long.",
		"max":       "Name cannot be more than 50 characters long.",
		"alphanum":  "Name should be lowercase alphanumeric.",
		"lowercase": "Name should be lowercase alphanumeric.",
	},
}

// VideoName validates the video title field of the upload form.
var VideoName = Field{ //nolint:gochecknoglobals
	Name:  "Video name",
	Rules: lengthRules(constants.Fields.VideoName),
	Messages: map[string]string{
		"required": "Video name is required.",
		"min":      "Video name must be at least 3 characters long.",
		"max":      "Video name cannot be more than 120 characters long.",
	},
}

// AdminEmail validates the instance administrator contact form field.
var AdminEmail = Field{ //nolint:gochecknoglobals
	Name:  "Admin email",
	Rules: "required,email",
	Messages: map[string]string{
		"required": "Admin email is required.",
		"email":    "Admin email must be a valid email address.",
	},
}
