package contactsrepo

import (
	"time"

	"github.com/jrazmi/join/sdk/validation"
)

// Contact is an address book entry.
type Contact struct {
	ID        int64     `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	CreatedAt time.Time `db:"created_at"`
}

// FullName joins first and last name. It is derived on every call and
// never stored.
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

type CreateContact struct {
	FirstName *string    `json:"first_name" validate:"required,notblank,max=100"`
	LastName  *string    `json:"last_name" validate:"required,notblank,max=500"`
	CreatedAt *time.Time `json:"created_at"`
}

func (c CreateContact) Validate() validation.FieldErrors {
	return validation.Struct(c)
}

func (c CreateContact) contact(today time.Time) Contact {
	ct := Contact{
		FirstName: validation.GetStringOrEmpty(c.FirstName),
		LastName:  validation.GetStringOrEmpty(c.LastName),
		CreatedAt: today,
	}
	if c.CreatedAt != nil {
		ct.CreatedAt = validation.DateOf(*c.CreatedAt)
	}
	return ct
}

// UpdateContact is a partial update: only non-nil fields change.
type UpdateContact struct {
	FirstName *string    `json:"first_name" validate:"omitnil,notblank,max=100"`
	LastName  *string    `json:"last_name" validate:"omitnil,notblank,max=500"`
	CreatedAt *time.Time `json:"created_at"`
}

func (u UpdateContact) Validate() validation.FieldErrors {
	return validation.Struct(u)
}

func (u UpdateContact) Apply(c *Contact) {
	if u.FirstName != nil {
		c.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		c.LastName = *u.LastName
	}
	if u.CreatedAt != nil {
		c.CreatedAt = validation.DateOf(*u.CreatedAt)
	}
}
