package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the decoded caller identity. Role stays a free-form string on the
// wire; it is only trusted after user.ParseRole accepts it.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
