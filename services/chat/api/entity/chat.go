package entity

type AskRequest struct {
	Message string `form:"message" validate:"required"`
}
