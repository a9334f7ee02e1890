package client

import (
	"errors"
	"strings"
	"time"
)

type Type string

const (
	TypePersonal Type = "PERSONAL"
	TypeCompany  Type = "COMPANY"
)

var (
	ErrUnknownType    = errors.New("client type must be PERSONAL or COMPANY")
	ErrMissingName    = errors.New("personal clients need a first or last name")
	ErrMissingCompany = errors.New("company clients need a company_name")
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypePersonal, TypeCompany:
		return Type(s), nil
	}
	return "", ErrUnknownType
}

// Client is a personal customer or a company account.
type Client struct {
	ClientID    uint      `gorm:"primaryKey;column:client_id;autoIncrement" json:"client_id"`
	Type        Type      `gorm:"type:client_type;not null;default:'PERSONAL'" json:"type"`
	FirstName   *string   `gorm:"size:100" json:"first_name"`
	LastName    *string   `gorm:"size:100;index" json:"last_name"`
	CompanyName *string   `gorm:"size:200;index" json:"company_name"`
	Email       *string   `gorm:"size:255" json:"email"`
	Phone       *string   `gorm:"size:50" json:"phone"`
	Street      *string   `gorm:"size:200" json:"street"`
	PostalCode  *string   `gorm:"size:20" json:"postal_code"`
	City        *string   `gorm:"size:100" json:"city"`
	Country     *string   `gorm:"size:100" json:"country"`
	Notes       *string   `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Client) TableName() string {
	return "clients"
}

// Validate enforces the name fields required by the type discriminator.
func (c *Client) Validate() error {
	switch c.Type {
	case TypePersonal:
		if blank(c.FirstName) && blank(c.LastName) {
			return ErrMissingName
		}
	case TypeCompany:
		if blank(c.CompanyName) {
			return ErrMissingCompany
		}
	default:
		return ErrUnknownType
	}
	return nil
}

// DisplayName is the company name for companies, "First Last" otherwise.
func (c *Client) DisplayName() string {
	if c.Type == TypeCompany && !blank(c.CompanyName) {
		return *c.CompanyName
	}
	var parts []string
	if !blank(c.FirstName) {
		parts = append(parts, strings.TrimSpace(*c.FirstName))
	}
	if !blank(c.LastName) {
		parts = append(parts, strings.TrimSpace(*c.LastName))
	}
	return strings.Join(parts, " ")
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
