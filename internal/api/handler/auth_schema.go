package handler

import "time"

type credentialsRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type userSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type authResponse struct {
	Message string      `json:"message"`
	User    userSummary `json:"user"`
}

type profileResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
