package dto

import "getexposure/internal/entity"

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	Success bool     `json:"success"`
	User    UserInfo `json:"user"`
}

func LoginResponseFromAdmin(admin *entity.Admin) LoginResponse {
	return LoginResponse{
		Success: true,
		User:    UserInfo{ID: admin.ID, Username: admin.Username},
	}
}
