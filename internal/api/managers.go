package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Abhishek2312Singh/complain-management-system/internal/view"
)

// Managers fetches the roster. Entries come back raw; the caller normalizes
// through view.NormalizeManager.
func (c *Client) Managers(ctx context.Context) ([]view.Payload, error) {
	tok, err := c.bearer()
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodGet, "/manager/getall", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	data, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var out []view.Payload
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddManager registers a new manager and returns the server's confirmation
// text.
func (c *Client) AddManager(ctx context.Context, fullName, email, mobile string) (string, error) {
	tok, err := c.bearer()
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(map[string]string{
		"fullName": fullName,
		"email":    email,
		"mobile":   mobile,
	})
	if err != nil {
		return "", err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/manager/addmanager", bytes.NewReader(body))
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
