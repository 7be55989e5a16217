package schemas

import "guildtrivia/models"

// CreateUser is the registration payload.
type CreateUser struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Login is the credential payload.
type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the issued access token.
type LoginResult struct {
	AccessToken string `json:"accessToken" validate:"required"`
}

// UserPublic is the outward user shape. Credential material and guild
// internals never pass through it.
type UserPublic struct {
	ID    string `json:"id" validate:"required,uuid4"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Score int    `json:"score" validate:"gte=0"`
}

// UserID validates the :id path parameter.
type UserID struct {
	ID string `json:"id" validate:"required,uuid4"`
}

func UserFromModel(m models.User) UserPublic {
	return UserPublic{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
		Score: m.Score,
	}
}
