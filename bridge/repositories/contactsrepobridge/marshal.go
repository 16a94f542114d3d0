package contactsrepobridge

import (
	"github.com/jrazmi/join/bridge/scaffolding/payload"
	"github.com/jrazmi/join/core/repositories/contactsrepo"
	"github.com/jrazmi/join/sdk/validation"
)

func MarshalToBridge(c contactsrepo.Contact) Contact {
	return Contact{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		CreatedAt: validation.FormatDate(c.CreatedAt),
		FullName:  c.FullName(),
	}
}

func MarshalListToBridge(contacts []contactsrepo.Contact) []Contact {
	out := make([]Contact, len(contacts))
	for i, c := range contacts {
		out[i] = MarshalToBridge(c)
	}
	return out
}

func MarshalCreateToRepository(input ContactInput) (contactsrepo.CreateContact, error) {
	fe := validation.FieldErrors{}

	create := contactsrepo.CreateContact{
		FirstName: payload.String(fe, "first_name", input.FirstName),
		LastName:  payload.String(fe, "last_name", input.LastName),
		CreatedAt: payload.Date(fe, "created_at", input.CreatedAt),
	}

	fe.Merge(create.Validate())
	return create, fe.Err()
}

func MarshalUpdateToRepository(input ContactInput) (contactsrepo.UpdateContact, error) {
	fe := validation.FieldErrors{}

	patch := contactsrepo.UpdateContact{
		FirstName: payload.String(fe, "first_name", input.FirstName),
		LastName:  payload.String(fe, "last_name", input.LastName),
		CreatedAt: payload.Date(fe, "created_at", input.CreatedAt),
	}

	fe.Merge(patch.Validate())
	return patch, fe.Err()
}
