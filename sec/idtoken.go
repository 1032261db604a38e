package sec

import (
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ParseRSASignedToken verifies a signed id_token (string) from the auth
// service into a parsed jwt.Token object.
func ParseRSASignedToken(signedToken string, pubKey *rsa.PublicKey) (*jwt.Token, error) {
	return jwt.Parse(signedToken, func(token *jwt.Token) (interface{}, error) {
		// ensure alg is RS256
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return pubKey, nil
	})
}

func GetClaimsFromParsedJWTToken(parsedToken *jwt.Token) (jwt.MapClaims, error) {
	if !parsedToken.Valid {
		return nil, errors.New("invalid token")
	}
	claimMap, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to convert token claims to a map")
	}
	return claimMap, nil
}

// RoleFromClaims reads the `role` claim. Admin-gated routes branch on this
// instead of any client-side secret.
func RoleFromClaims(claims jwt.MapClaims) string {
	role, _ := claims["role"].(string)
	return role
}
