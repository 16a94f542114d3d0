// Package contactsrepo stores contacts.
package contactsrepo

import (
	"context"
	"fmt"

	"github.com/jrazmi/join/sdk/logger"
	"github.com/jrazmi/join/sdk/validation"
)

type Storer interface {
	List(ctx context.Context) ([]Contact, error)
	Get(ctx context.Context, id int64) (Contact, error)
	Create(ctx context.Context, c Contact) (Contact, error)
	Update(ctx context.Context, id int64, patch UpdateContact) (Contact, error)
	Delete(ctx context.Context, id int64) error
}

type Repository struct {
	log    *logger.Logger
	storer Storer
}

func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

func (r *Repository) List(ctx context.Context) ([]Contact, error) {
	contacts, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("contact repository list: %w", err)
	}
	return contacts, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (Contact, error) {
	c, err := r.storer.Get(ctx, id)
	if err != nil {
		return Contact{}, fmt.Errorf("contact repository get: %w", err)
	}
	return c, nil
}

func (r *Repository) Create(ctx context.Context, input CreateContact) (Contact, error) {
	if err := input.Validate().Err(); err != nil {
		return Contact{}, err
	}

	c, err := r.storer.Create(ctx, input.contact(validation.Today()))
	if err != nil {
		return Contact{}, fmt.Errorf("contact repository create: %w", err)
	}

	r.log.InfoContext(ctx, "contact created", "contact_id", c.ID)
	return c, nil
}

func (r *Repository) Update(ctx context.Context, id int64, patch UpdateContact) (Contact, error) {
	if err := patch.Validate().Err(); err != nil {
		return Contact{}, err
	}

	c, err := r.storer.Update(ctx, id, patch)
	if err != nil {
		return Contact{}, fmt.Errorf("contact repository update: %w", err)
	}
	return c, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.storer.Delete(ctx, id); err != nil {
		return fmt.Errorf("contact repository delete: %w", err)
	}
	return nil
}
