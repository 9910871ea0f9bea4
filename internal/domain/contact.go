package domain

import (
	"errors"
	"regexp"
	"time"
)

// Validation failures carry the exact message shown to the client.
var (
	ErrRequiredFields = errors.New("Name, email, and message are required")
	ErrInvalidEmail   = errors.New("Invalid email format")
)

// ContactSourceForm tags submissions that arrived through the website
// contact form.
const ContactSourceForm = "contact_form"

// emailPattern is intentionally loose: something before an "@", something
// after it, and at least one dot in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s]+$`)

// ContactRequest is the inbound contact-form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactSubmission is a persisted contact-form entry. Phone and Subject are
// pointers so that omitted values are stored as null rather than empty
// strings. Rows are immutable once inserted.
type ContactSubmission struct {
	ID        string     `json:"id,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone"`
	Subject   *string    `json:"subject"`
	Message   string     `json:"message"`
	Source    string     `json:"source"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ValidateContactRequest checks required-field presence and email shape.
// Rules run in order and the first failure wins. Values are checked as-is,
// with no trimming or case folding.
func ValidateContactRequest(req *ContactRequest) error {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return ErrRequiredFields
	}
	if !emailPattern.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// Submission builds the row to persist from the validated request. Empty
// optional fields become null.
func (r *ContactRequest) Submission() *ContactSubmission {
	return &ContactSubmission{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   optional(r.Phone),
		Subject: optional(r.Subject),
		Message: r.Message,
		Source:  ContactSourceForm,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
