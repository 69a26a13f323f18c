package dto

import "time"

type UserSession struct {
	UserID    string    `json:"userID"`
	Token     string    `json:"token"`
	LoginTime time.Time `json:"loginTime"`
}

type LogoutRequest struct {
	UserID string `json:"userID" binding:"required"`
	Token  string `json:"token" binding:"required"`
}
