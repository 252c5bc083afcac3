package tui

import (
	"context"

	"github.com/Abhishek2312Singh/complain-management-system/internal/api"
	"github.com/Abhishek2312Singh/complain-management-system/internal/view"
)

// Gateway is the slice of the API client the TUI drives. Tests substitute a
// fake; production passes *api.Client.
type Gateway interface {
	SubmitComplaint(ctx context.Context, in api.ComplaintInput) (any, error)
	Complaint(ctx context.Context, number string, withAuth bool) (view.Payload, error)
	Login(ctx context.Context, username, password string) (string, error)
	Profile(ctx context.Context) (view.Payload, error)
	UpdateProfile(ctx context.Context, email, mobile string) (string, error)
	UpdatePassword(ctx context.Context, current, updated, confirm string) (string, error)
	Managers(ctx context.Context) ([]view.Payload, error)
	AddManager(ctx context.Context, fullName, email, mobile string) (string, error)
	ComplaintNumbers(ctx context.Context, status string) ([]string, error)
	AssignManager(ctx context.Context, number, managerUsername string) (string, error)
}

// Cache is the slice of the local store the TUI uses.
type Cache interface {
	Complaints() []view.Payload
	AddComplaint(p view.Payload) error
	RemoveComplaint(id string) error
}
