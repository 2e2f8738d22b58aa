// Package domain provides the contact model and the pure operations over
// contact sequences: validation, name sorting and pagination.
package domain

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Contact is a directory record as served by the contacts API. Contacts
// are values; collections are copied rather than mutated.
type Contact struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Address  Address `json:"address"`
	Company  Company `json:"company"`
}

// Address is the postal address of a contact.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

// Geo holds coordinates as sent by the API (decimal strings).
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Company is the employer of a contact.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// Validate checks the fields the directory relies on.
func (c Contact) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required, validation.Min(1)),
		validation.Field(&c.Name, validation.Required, validation.By(notBlank)),
		validation.Field(&c.Email, is.EmailFormat),
	)
}

func notBlank(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "cannot be blank")
	}
	return nil
}

// FormatLine renders the address the way contact cards show it:
// "suite, street, city, zipcode", skipping empty parts.
func (a Address) FormatLine() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Suite, a.Street, a.City, a.Zipcode} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Names returns the names of contacts in order.
func Names(contacts []Contact) []string {
	names := make([]string, len(contacts))
	for i, c := range contacts {
		names[i] = c.Name
	}
	return names
}

// Clone returns a copy of contacts that shares no backing array.
func Clone(contacts []Contact) []Contact {
	if contacts == nil {
		return nil
	}
	out := make([]Contact, len(contacts))
	copy(out, contacts)
	return out
}
