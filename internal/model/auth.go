package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are JWT claims for authenticated users
type UserClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
