package client

import (
	"strings"

	"github.com/nextgencars/backend/internal/domain/query"
	"github.com/nextgencars/backend/pkg/types"
)

type CreateClientInput struct {
	Type        string  `json:"type" binding:"required" example:"PERSONAL"`
	FirstName   *string `json:"first_name,omitempty" example:"Anna"`
	LastName    *string `json:"last_name,omitempty" example:"Schmidt"`
	CompanyName *string `json:"company_name,omitempty"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"`
	Street      *string `json:"street,omitempty"`
	PostalCode  *string `json:"postal_code,omitempty"`
	City        *string `json:"city,omitempty"`
	Country     *string `json:"country,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// UpdateClientInput leaves omitted fields untouched; null clears them.
type UpdateClientInput struct {
	Type        types.Optional[string] `json:"type" swaggertype:"string"`
	FirstName   types.Optional[string] `json:"first_name" swaggertype:"string"`
	LastName    types.Optional[string] `json:"last_name" swaggertype:"string"`
	CompanyName types.Optional[string] `json:"company_name" swaggertype:"string"`
	Email       types.Optional[string] `json:"email" swaggertype:"string"`
	Phone       types.Optional[string] `json:"phone" swaggertype:"string"`
	Street      types.Optional[string] `json:"street" swaggertype:"string"`
	PostalCode  types.Optional[string] `json:"postal_code" swaggertype:"string"`
	City        types.Optional[string] `json:"city" swaggertype:"string"`
	Country     types.Optional[string] `json:"country" swaggertype:"string"`
	Notes       types.Optional[string] `json:"notes" swaggertype:"string"`
}

type ListParams struct {
	Search string
	Skip   int
	Take   int
}

type Page struct {
	Items []Client `json:"items"`
	Total int64    `json:"total"`
}

// Predicate matches the search term against names and contact fields.
func (p ListParams) Predicate() query.Node {
	term := strings.TrimSpace(p.Search)
	if term == "" {
		return nil
	}
	return query.Or{
		query.ContainsFold{Field: "first_name", Value: term},
		query.ContainsFold{Field: "last_name", Value: term},
		query.ContainsFold{Field: "company_name", Value: term},
		query.ContainsFold{Field: "email", Value: term},
		query.ContainsFold{Field: "phone", Value: term},
	}
}

func (in CreateClientInput) Build() (*Client, error) {
	typ, err := ParseType(in.Type)
	if err != nil {
		return nil, err
	}
	c := &Client{
		Type:        typ,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		CompanyName: in.CompanyName,
		Email:       in.Email,
		Phone:       in.Phone,
		Street:      in.Street,
		PostalCode:  in.PostalCode,
		City:        in.City,
		Country:     in.Country,
		Notes:       in.Notes,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ApplyTo merges the input into c and revalidates the result.
func (in UpdateClientInput) ApplyTo(c *Client) error {
	if in.Type.Set {
		if in.Type.Null {
			return ErrUnknownType
		}
		typ, err := ParseType(in.Type.Value)
		if err != nil {
			return err
		}
		c.Type = typ
	}
	in.FirstName.ApplyTo(&c.FirstName)
	in.LastName.ApplyTo(&c.LastName)
	in.CompanyName.ApplyTo(&c.CompanyName)
	in.Email.ApplyTo(&c.Email)
	in.Phone.ApplyTo(&c.Phone)
	in.Street.ApplyTo(&c.Street)
	in.PostalCode.ApplyTo(&c.PostalCode)
	in.City.ApplyTo(&c.City)
	in.Country.ApplyTo(&c.Country)
	in.Notes.ApplyTo(&c.Notes)
	return c.Validate()
}
