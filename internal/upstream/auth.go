package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"medicenter-portal/internal/domain/gateway"
)

// accountPayload is the upstream's user shape. Age is a pointer on purpose:
// its absence on a Google account is what signals that profile completion is
// still required.
type accountPayload struct {
	ID           string `json:"id"`
	LegacyID     string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	AuthProvider string `json:"authProvider"`
	Age          *int   `json:"age"`
	Phone        string `json:"phone"`
}

// authPayload tolerates both the flat {token, ...userFields} shape and the
// nested {token, user: {...}} shape.
type authPayload struct {
	Token string          `json:"token"`
	User  *accountPayload `json:"user"`
	accountPayload
}

func (p *accountPayload) toFields(defaultProvider string) gateway.AccountFields {
	fields := gateway.AccountFields{
		ID:           p.ID,
		Email:        p.Email,
		DisplayName:  p.Name,
		Role:         p.Role,
		AuthProvider: p.AuthProvider,
		Age:          p.Age,
		Phone:        p.Phone,
	}
	if fields.ID == "" {
		fields.ID = p.LegacyID
	}
	if fields.AuthProvider == "" {
		fields.AuthProvider = defaultProvider
	}
	return fields
}

func normalizeAuthResult(body []byte, defaultProvider string) (*gateway.AuthResult, error) {
	var payload authPayload
	if err := json.Unmarshal(unwrapData(body), &payload); err != nil {
		return nil, err
	}

	account := payload.accountPayload
	if payload.User != nil {
		account = *payload.User
	}

	return &gateway.AuthResult{
		Token: payload.Token,
		User:  account.toFields(defaultProvider),
	}, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*gateway.AuthResult, error) {
	body, err := c.do(ctx, "auth.login", http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	return normalizeAuthResult(body, "password")
}

func (c *Client) Register(ctx context.Context, input gateway.RegisterInput) (*gateway.AuthResult, error) {
	body, err := c.do(ctx, "auth.register", http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name":     input.Name,
		"email":    input.Email,
		"password": input.Password,
		"phone":    input.Phone,
		"age":      input.Age,
	})
	if err != nil {
		return nil, err
	}
	return normalizeAuthResult(body, "password")
}

func (c *Client) GoogleLogin(ctx context.Context, credential string) (*gateway.AuthResult, error) {
	body, err := c.do(ctx, "auth.google", http.MethodPost, "/auth/google", "", map[string]string{
		"token": credential,
	})
	if err != nil {
		return nil, err
	}
	return normalizeAuthResult(body, "google")
}

func (c *Client) CompleteProfile(ctx context.Context, token string, age int, phone string) error {
	_, err := c.do(ctx, "auth.complete_profile", http.MethodPatch, "/auth/complete-profile", token, map[string]interface{}{
		"age":   age,
		"phone": phone,
	})
	return err
}

func (c *Client) CurrentUser(ctx context.Context, token string) (*gateway.AccountFields, error) {
	body, err := c.do(ctx, "auth.me", http.MethodGet, "/auth/me", token, nil)
	if err != nil {
		return nil, err
	}

	var payload accountPayload
	if err := json.Unmarshal(unwrapData(body), &payload); err != nil {
		return nil, err
	}
	fields := payload.toFields("password")
	return &fields, nil
}
