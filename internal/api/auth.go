package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/Abhishek2312Singh/complain-management-system/internal/view"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token. The backend answers with
// the token as a plain-text body; a 2xx with an empty body is its own
// failure mode (ErrNoToken), distinct from bad credentials.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(credentials{Username: username, Password: password})
	if err != nil {
		return "", err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/login", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	data, err := c.do(req)
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Profile fetches the current admin's user record.
func (c *Client) Profile(ctx context.Context) (view.Payload, error) {
	tok, err := c.bearer()
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodGet, "/getuser", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	data, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var p view.Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProfile changes the admin's email and mobile. Returns the server's
// confirmation text.
func (c *Client) UpdateProfile(ctx context.Context, email, mobile string) (string, error) {
	tok, err := c.bearer()
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(map[string]string{"email": email, "mobile": mobile})
	if err != nil {
		return "", err
	}
	req, err := c.newRequest(ctx, http.MethodPut, "/updateuser", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	data, err := c.do(req)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// UpdatePassword resets the admin password. The deployed backend takes the
// credentials as query parameters, not a body.
func (c *Client) UpdatePassword(ctx context.Context, current, updated, confirm string) (string, error) {
	tok, err := c.bearer()
	if err != nil {
		return "", err
	}
	q := url.Values{}
	q.Set("currentPassword", current)
	q.Set("newPassword", updated)
	q.Set("confirmPassword", confirm)
	req, err := c.newRequest(ctx, http.MethodPut, "/updatepassword?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	data, err := c.do(req)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
