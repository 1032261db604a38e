package authsvc

import (
	"context"
	"crypto/rsa"
	"encoding/json/v2"
	"fmt"
	"log"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sitetools/ops-core/responses"
	"github.com/sitetools/ops-core/sec"
	"github.com/sitetools/ops-core/web/login"
)

// Client - HTTP client for the company auth service. Resolves access
// tokens to user profiles and verifies signed id_tokens.
type Client struct {
	*http.Client // [Embedded]
	Conf         *Conf

	pubKey *rsa.PublicKey
}

func NewClient(conf *Conf) (*Client, error) {
	c := &Client{
		Client: &http.Client{},
		Conf:   conf,
	}
	if conf.PublicKeyPEM != "" {
		pubKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(conf.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("auth service public key: %w", err)
		}
		c.pubKey = pubKey
	}
	return c, nil
}

// RequestJSON sends a request and returns the response.
// The caller is responsible for closing response.Body.
func (c *Client) RequestJSON(ctx context.Context, accessToken string, method string, endpoint string) (*http.Response, error) {
	upstrURL := c.Conf.Host + endpoint
	upstrReq, err := http.NewRequestWithContext(ctx, method, upstrURL, nil)
	if err != nil {
		return nil, err
	}
	upstrReq.Header.Set("Client-Id", c.Conf.ClientID)
	upstrReq.Header.Set("Authorization", "Bearer "+accessToken)
	upstrReq.Header.Set("Content-Type", "application/json")
	upstrReq.Header.Set("Accept", "application/json")
	return c.Do(upstrReq)
}

// GetCurrentUser resolves an access token to the user's profile,
// including the role claim used for admin gating.
func (c *Client) GetCurrentUser(ctx context.Context, accessToken string) (*login.UserInfo, error) {
	upstrRes, err := c.RequestJSON(ctx, accessToken, http.MethodGet, c.Conf.CurrentUserEndpoint)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := upstrRes.Body.Close(); closeErr != nil {
			log.Printf("[WARN] %v", closeErr)
		}
	}()
	if upstrRes.StatusCode == http.StatusUnauthorized {
		return nil, responses.HTTPErrorUnauthorized
	}
	if upstrRes.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP Status Code: %d", upstrRes.StatusCode)
	}
	var user login.UserInfo
	if err = json.UnmarshalRead(upstrRes.Body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UserFromIDToken verifies a signed id_token locally and maps its claims
// to a user profile without an upstream round trip.
func (c *Client) UserFromIDToken(signedToken string) (*login.UserInfo, error) {
	if c.pubKey == nil {
		return nil, fmt.Errorf("auth service public key not configured")
	}
	parsed, err := sec.ParseRSASignedToken(signedToken, c.pubKey)
	if err != nil {
		return nil, err
	}
	claims, err := sec.GetClaimsFromParsedJWTToken(parsed)
	if err != nil {
		return nil, err
	}
	sub, _ := claims["sub"].(string)
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	return &login.UserInfo{
		IDStr:       sub,
		DisplayName: name,
		Email:       email,
		Role:        sec.RoleFromClaims(claims),
	}, nil
}
