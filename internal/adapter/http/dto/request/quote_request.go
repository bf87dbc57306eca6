package request

import (
	"errors"
	"strings"
)

var ErrInvalidEmailValue = errors.New("invalid email value")

// QuoteRequest is a direct quote submission, outside the wizard flow.
//
// Website is the honeypot field: it is invisible in the form, so any
// non-empty value marks the sender as a bot. FormMountedAtMillis is set by
// the client when the form is rendered and feeds the dwell-time check.
type QuoteRequest struct {
	UserEmail           string               `json:"user_email" binding:"required"`
	FormMountedAtMillis int64                `json:"form_mounted_at_millis"`
	Website             string               `json:"website"`
	RepeatConfirmed     bool                 `json:"repeat_confirmed"`
	Configuration       ConfigurationRequest `json:"configuration"`
}

func (r QuoteRequest) ResolveEmail() (string, error) {
	email := strings.TrimSpace(r.UserEmail)
	if email == "" || !strings.Contains(email, "@") {
		return "", ErrInvalidEmailValue
	}
	return email, nil
}
