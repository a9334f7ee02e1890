package user

import "github.com/nextgencars/backend/pkg/types"

type LoginInput struct {
	// Username or email.
	Login    string `json:"login" form:"login" binding:"required" example:"frontdesk"`
	Password string `json:"password" form:"password" binding:"required" example:"secret123"`
}

type CreateUserInput struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"jdoe"`
	Email    string `json:"email" binding:"required,email" example:"jdoe@nextgen-cars.de"`
	Password string `json:"password" binding:"required,min=8" example:"secret123"`
	Role     string `json:"role" binding:"required,oneof=admin frontdesk mechanic" example:"mechanic"`
}

type UpdateUserInput struct {
	Email    types.Optional[string] `json:"email" swaggertype:"string"`
	Role     types.Optional[string] `json:"role" swaggertype:"string"`
	Password types.Optional[string] `json:"password" swaggertype:"string"`
}
