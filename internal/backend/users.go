package backend

import (
	"context"
	"fmt"
	"net/http"

	"rate_front_end/internal/models"
)

// LoginResult porte le token émis par le backend et le profil associé
type LoginResult struct {
	AccessToken string      `json:"accessToken"`
	User        models.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "auth/login", "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RegisterRequest est le corps de POST auth/register
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "auth/register", "", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetProfile retourne le profil du porteur du token
func (c *Client) GetProfile(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "users/profile", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserRequest : champs modifiables du profil (PATCH partiel)
type UpdateUserRequest struct {
	Nickname    *string `json:"nickname,omitempty"`
	Email       *string `json:"email,omitempty"`
	Description *string `json:"description,omitempty"`
	Country     *string `json:"country,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`
}

func (c *Client) UpdateUser(ctx context.Context, token string, userID int64, req UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("users/%d", userID), token, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ChangePassword(ctx context.Context, token, oldPassword, newPassword string) error {
	body := map[string]string{
		"oldPassword": oldPassword,
		"newPassword": newPassword,
	}
	return c.do(ctx, http.MethodPost, "users/change-password", token, body, nil)
}
