package claims

import jwt "github.com/dgrijalva/jwt-go"

const RoleAuthenticated = "authenticated"

// Claims is the token shape Supabase expects for a signed-in user.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
	jwt.StandardClaims
}
