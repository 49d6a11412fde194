// Package admin orchestrates one admin operation end-to-end: call the
// transport, normalize empty replies where the API is known to return
// nothing on success, and hand the result to the output sink.
package admin

import (
	"context"

	"github.com/soyeahso/tenctl/internal/output"
)

// Client is the transport surface the dispatcher depends on. Identifiers
// are passed through unvalidated; the remote API rejects bad ones.
type Client interface {
	CreateAccount(ctx context.Context, accountID, adminUserID string) (any, error)
	ListAccounts(ctx context.Context) (any, error)
	DeleteAccount(ctx context.Context, accountID string) (any, error)
	RegisterUser(ctx context.Context, accountID, userID, role string) (any, error)
	ListUsers(ctx context.Context, accountID string) (any, error)
	RemoveUser(ctx context.Context, accountID, userID string) (any, error)
	SetRole(ctx context.Context, accountID, userID, role string) (any, error)
	RegenerateKey(ctx context.Context, accountID, userID string) (any, error)
}

// Sink receives successful results for rendering. It is never called when
// the transport fails.
type Sink interface {
	Success(v any, format output.Format, compact bool)
}

// Options carries presentation choices through to the sink unmodified.
type Options struct {
	Format  output.Format
	Compact bool
}

// Admin dispatches admin operations over a transport client.
type Admin struct {
	client Client
	out    Sink
}

// New creates a dispatcher over the given transport and sink.
func New(client Client, out Sink) *Admin {
	return &Admin{client: client, out: out}
}

// CreateAccount creates an account with an initial admin user.
func (a *Admin) CreateAccount(ctx context.Context, accountID, adminUserID string, opts Options) error {
	resp, err := a.client.CreateAccount(ctx, accountID, adminUserID)
	if err != nil {
		return err
	}
	a.out.Success(resp, opts.Format, opts.Compact)
	return nil
}

// ListAccounts lists all accounts.
func (a *Admin) ListAccounts(ctx context.Context, opts Options) error {
	resp, err := a.client.ListAccounts(ctx)
	if err != nil {
		return err
	}
	a.out.Success(resp, opts.Format, opts.Compact)
	return nil
}

// DeleteAccount deletes an account. The API signals success with an empty
// reply, so a confirmation payload is synthesized from the request.
func (a *Admin) DeleteAccount(ctx context.Context, accountID string, opts Options) error {
	resp, err := a.client.DeleteAccount(ctx, accountID)
	if err != nil {
		return err
	}
	result := Normalize(resp, map[string]any{"account_id": accountID})
	a.out.Success(result, opts.Format, opts.Compact)
	return nil
}

// RegisterUser adds a user to an account.
func (a *Admin) RegisterUser(ctx context.Context, accountID, userID, role string, opts Options) error {
	resp, err := a.client.RegisterUser(ctx, accountID, userID, role)
	if err != nil {
		return err
	}
	a.out.Success(resp, opts.Format, opts.Compact)
	return nil
}

// ListUsers lists the users of an account.
func (a *Admin) ListUsers(ctx context.Context, accountID string, opts Options) error {
	resp, err := a.client.ListUsers(ctx, accountID)
	if err != nil {
		return err
	}
	a.out.Success(resp, opts.Format, opts.Compact)
	return nil
}

// RemoveUser removes a user from an account. As with DeleteAccount, an
// empty reply is replaced by a synthesized confirmation.
func (a *Admin) RemoveUser(ctx context.Context, accountID, userID string, opts Options) error {
	resp, err := a.client.RemoveUser(ctx, accountID, userID)
	if err != nil {
		return err
	}
	result := Normalize(resp, map[string]any{"account_id": accountID, "user_id": userID})
	a.out.Success(result, opts.Format, opts.Compact)
	return nil
}

// SetRole changes a user's role.
func (a *Admin) SetRole(ctx context.Context, accountID, userID, role string, opts Options) error {
	resp, err := a.client.SetRole(ctx, accountID, userID, role)
	if err != nil {
		return err
	}
	a.out.Success(resp, opts.Format, opts.Compact)
	return nil
}

// RegenerateKey issues a fresh API key for a user.
func (a *Admin) RegenerateKey(ctx context.Context, accountID, userID string, opts Options) error {
	resp, err := a.client.RegenerateKey(ctx, accountID, userID)
	if err != nil {
		return err
	}
	a.out.Success(resp, opts.Format, opts.Compact)
	return nil
}
