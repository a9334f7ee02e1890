package client

import (
	"testing"

	"github.com/nextgencars/backend/pkg/types"
	"github.com/stretchr/testify/assert"
)

func str(s string) *string { return &s }

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		c    Client
		want error
	}{
		{"personal with last name", Client{Type: TypePersonal, LastName: str("Schmidt")}, nil},
		{"personal blank names", Client{Type: TypePersonal, FirstName: str("  ")}, ErrMissingName},
		{"company", Client{Type: TypeCompany, CompanyName: str("Autohaus Nord GmbH")}, nil},
		{"company without name", Client{Type: TypeCompany, LastName: str("Schmidt")}, ErrMissingCompany},
		{"unknown type", Client{Type: "FLEET"}, ErrUnknownType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Validate())
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Anna Schmidt", (&Client{Type: TypePersonal, FirstName: str("Anna"), LastName: str("Schmidt")}).DisplayName())
	assert.Equal(t, "Schmidt", (&Client{Type: TypePersonal, LastName: str("Schmidt")}).DisplayName())
	assert.Equal(t, "Autohaus Nord", (&Client{Type: TypeCompany, CompanyName: str("Autohaus Nord")}).DisplayName())
}

func TestCreateClientInputBuild(t *testing.T) {
	c, err := CreateClientInput{Type: "COMPANY", CompanyName: str("Autohaus Nord GmbH")}.Build()
	if assert.NoError(t, err) {
		assert.Equal(t, TypeCompany, c.Type)
	}

	_, err = CreateClientInput{Type: "company", CompanyName: str("x")}.Build()
	assert.Equal(t, ErrUnknownType, err)

	_, err = CreateClientInput{Type: "PERSONAL"}.Build()
	assert.Equal(t, ErrMissingName, err)
}

func TestUpdateClientInputApplyTo(t *testing.T) {
	c := &Client{Type: TypePersonal, FirstName: str("Anna"), LastName: str("Schmidt"), Phone: str("040 123")}

	err := UpdateClientInput{Phone: types.Null[string](), LastName: types.Some("Meyer")}.ApplyTo(c)
	assert.NoError(t, err)
	assert.Nil(t, c.Phone)
	assert.Equal(t, "Meyer", *c.LastName)
	assert.Equal(t, "Anna", *c.FirstName)

	err = UpdateClientInput{Type: types.Some("COMPANY")}.ApplyTo(c)
	assert.Equal(t, ErrMissingCompany, err)
}
