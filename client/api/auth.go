package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/PhornSunnich/emall-cambodia/client/shop"
)

type LoginResult struct {
	Token string    `json:"token"`
	User  shop.User `json:"user"`
}

// Login exchanges credentials for a token and the user identity.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return LoginResult{}, err
	}

	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, bytes.NewReader(body), &result); err != nil {
		return LoginResult{}, err
	}
	return result, nil
}

// Register creates an account. The caller logs in separately.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/api/auth/register", nil, bytes.NewReader(body), nil)
}
