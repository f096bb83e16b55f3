// Package lead models the "Not ready to book?" lead-magnet form: its two
// input values, the checks the browser applies before submitting, and the
// placeholder submission that stands in for a hosted CRM form.
package lead

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PlaceholderNotice is shown after every accepted submission
const PlaceholderNotice = "Demo only. In GHL, embed your Form and map to a workflow."

// FormState holds the two input values of the form. The page never clears
// them; they are echoed back into the inputs after a submission.
type FormState struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Empty reports whether neither field has a value
func (f FormState) Empty() bool {
	return f.Email == "" && f.Phone == ""
}

// ValidationError names the field that failed a browser-side constraint
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// WHATWG "valid e-mail address", the rule browsers apply to type=email
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// Validate applies the constraints the form declares: both inputs are
// required, the email input has type=email, the phone input has type=tel.
// Browsers do not pattern-check tel inputs, only strip line breaks, so a
// phone value is rejected only when it is empty or contains a line break.
func Validate(f FormState) error {
	if f.Email == "" {
		return &ValidationError{Field: "email", Reason: "Please fill out this field."}
	}
	if !emailPattern.MatchString(f.Email) {
		return &ValidationError{Field: "email", Reason: "Please enter an email address."}
	}
	if f.Phone == "" {
		return &ValidationError{Field: "phone", Reason: "Please fill out this field."}
	}
	if strings.ContainsAny(f.Phone, "\r\n") {
		return &ValidationError{Field: "phone", Reason: "Please enter a phone number."}
	}
	return nil
}

// Normalize applies the value sanitization browsers run before submitting:
// line breaks are removed from both inputs and the email value loses its
// leading and trailing ASCII whitespace.
func Normalize(f FormState) FormState {
	return FormState{
		Email: strings.Trim(stripNewlines(f.Email), asciiWhitespace),
		Phone: stripNewlines(f.Phone),
	}
}

// ASCII whitespace as HTML defines it: tab, LF, FF, CR, space
const asciiWhitespace = "\t\n\f\r "

var newlines = strings.NewReplacer("\r", "", "\n", "")

func stripNewlines(s string) string {
	return newlines.Replace(s)
}

// Receipt acknowledges a submission
type Receipt struct {
	ID     string `json:"id"`
	Notice string `json:"notice"`
}

// Submitter receives valid form values
type Submitter interface {
	Submit(ctx context.Context, f FormState) (Receipt, error)
}

// Placeholder stands in for the hosted CRM form. It stores nothing and calls
// nothing; it only logs the (masked) submission and returns the fixed notice.
type Placeholder struct{}

// Submit implements Submitter
func (Placeholder) Submit(ctx context.Context, f FormState) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	r := Receipt{ID: uuid.NewString(), Notice: PlaceholderNotice}
	logrus.WithFields(logrus.Fields{
		"receipt": r.ID,
		"email":   MaskEmail(f.Email),
		"phone":   MaskPhone(f.Phone),
	}).Info("Lead form submitted (placeholder, not forwarded)")
	return r, nil
}

// MaskEmail keeps the first character of the local part and the domain
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 1 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}

// MaskPhone keeps the last two digits
func MaskPhone(phone string) string {
	var digits []rune
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 2 {
		return "***"
	}
	return "***" + string(digits[len(digits)-2:])
}

// IsValidation reports whether err is a *ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
