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

// ComplaintInput is the submit body. Mobile is numeric on the wire; the
// backend rejects a quoted value.
type ComplaintInput struct {
	Username string `json:"username"`
	Mobile   int64  `json:"mobile"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Complain string `json:"complain"`
}

// SubmitComplaint creates a complaint. Public: no token is attached. The
// response shape varies by backend build, so the raw decoded value is
// returned for the caller to probe.
func (c *Client) SubmitComplaint(ctx context.Context, in ComplaintInput) (any, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/complain/generatecomplain", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	data, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		// Some builds answer with the bare number as plain text.
		return strings.TrimSpace(string(data)), nil
	}
	return decoded, nil
}

// Complaint fetches one complaint by number. The endpoint is public for
// lookup but accepts a bearer; withAuth attaches the stored token so the
// admin detail view reuses the same call.
func (c *Client) Complaint(ctx context.Context, number string, withAuth bool) (view.Payload, error) {
	path := "/complain/getcomplain?complainNumber=" + url.QueryEscape(number)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if withAuth {
		tok, err := c.bearer()
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}
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

// ComplaintNumbers lists the identifiers in one status bucket. The endpoint
// has answered as a JSON array, an object wrapper, and newline text across
// backend builds; ParseNumberList accepts all three.
func (c *Client) ComplaintNumbers(ctx context.Context, status string) ([]string, error) {
	tok, err := c.bearer()
	if err != nil {
		return nil, err
	}
	path := "/getallcomplain?status=" + url.QueryEscape(status)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	data, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return ParseNumberList(data), nil
}

// AssignManager assigns a manager to a pending complaint. Returns the
// server's confirmation text, which may be empty.
func (c *Client) AssignManager(ctx context.Context, number, managerUsername string) (string, error) {
	tok, err := c.bearer()
	if err != nil {
		return "", err
	}
	q := url.Values{}
	q.Set("complainNumber", number)
	q.Set("managerUsername", managerUsername)
	req, err := c.newRequest(ctx, http.MethodPut, "/assignmanager?"+q.Encode(), nil)
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

// ParseNumberList decodes a status-bucket listing. JSON is tried first: a
// bare array, then the known object wrappers. Anything else is split on
// newlines with blanks discarded.
func ParseNumberList(data []byte) []string {
	var arr []any
	if err := json.Unmarshal(data, &arr); err == nil {
		return cleanNumbers(arr)
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err == nil {
		for _, key := range []string{"complainNumbers", "data", "list"} {
			if inner, ok := obj[key].([]any); ok {
				return cleanNumbers(inner)
			}
		}
		return nil
	}
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func cleanNumbers(items []any) []string {
	var out []string
	for _, item := range items {
		if s := strings.TrimSpace(view.Stringify(item)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
