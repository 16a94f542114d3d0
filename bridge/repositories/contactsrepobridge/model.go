package contactsrepobridge

import "github.com/jrazmi/join/bridge/scaffolding/payload"

// Contact is the wire form of a contact. FullName is derived on every
// response.
type Contact struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CreatedAt string `json:"created_at"`
	FullName  string `json:"full_name"`
}

// ContactInput is the body of a create or partial update. A full_name in
// the body is ignored.
type ContactInput struct {
	FirstName payload.Field `json:"first_name"`
	LastName  payload.Field `json:"last_name"`
	CreatedAt payload.Field `json:"created_at"`
}
