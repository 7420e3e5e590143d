package models

import "github.com/golang-jwt/jwt/v5"

const RoleAdmin = "admin"

// AdminClaims represents the claims carried by admin API tokens
type AdminClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}
