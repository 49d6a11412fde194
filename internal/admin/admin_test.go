package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyeahso/tenctl/internal/output"
)

// fakeClient returns canned responses per operation.
type fakeClient struct {
	resp map[string]any
	err  error

	calls []string
}

func (f *fakeClient) record(op string) (any, error) {
	f.calls = append(f.calls, op)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp[op], nil
}

func (f *fakeClient) CreateAccount(_ context.Context, _, _ string) (any, error) {
	return f.record("create_account")
}
func (f *fakeClient) ListAccounts(_ context.Context) (any, error) {
	return f.record("list_accounts")
}
func (f *fakeClient) DeleteAccount(_ context.Context, _ string) (any, error) {
	return f.record("delete_account")
}
func (f *fakeClient) RegisterUser(_ context.Context, _, _, _ string) (any, error) {
	return f.record("register_user")
}
func (f *fakeClient) ListUsers(_ context.Context, _ string) (any, error) {
	return f.record("list_users")
}
func (f *fakeClient) RemoveUser(_ context.Context, _, _ string) (any, error) {
	return f.record("remove_user")
}
func (f *fakeClient) SetRole(_ context.Context, _, _, _ string) (any, error) {
	return f.record("set_role")
}
func (f *fakeClient) RegenerateKey(_ context.Context, _, _ string) (any, error) {
	return f.record("regenerate_key")
}

// captureSink records what would have been rendered.
type captureSink struct {
	values   []any
	formats  []output.Format
	compacts []bool
}

func (s *captureSink) Success(v any, format output.Format, compact bool) {
	s.values = append(s.values, v)
	s.formats = append(s.formats, format)
	s.compacts = append(s.compacts, compact)
}

func TestDeleteAccountEmptyResponseSynthesizesConfirmation(t *testing.T) {
	fc := &fakeClient{resp: map[string]any{"delete_account": map[string]any{}}}
	sink := &captureSink{}
	a := New(fc, sink)

	err := a.DeleteAccount(context.Background(), "acme", Options{Format: output.FormatJSON, Compact: true})
	require.NoError(t, err)

	require.Len(t, sink.values, 1)
	assert.Equal(t, map[string]any{"account_id": "acme"}, sink.values[0])
	assert.Equal(t, output.FormatJSON, sink.formats[0])
	assert.True(t, sink.compacts[0])
}

func TestDeleteAccountNilResponseSynthesizesConfirmation(t *testing.T) {
	fc := &fakeClient{}
	sink := &captureSink{}
	a := New(fc, sink)

	require.NoError(t, a.DeleteAccount(context.Background(), "acme", Options{}))
	require.Len(t, sink.values, 1)
	assert.Equal(t, map[string]any{"account_id": "acme"}, sink.values[0])
}

func TestDeleteAccountRealResponsePassedThrough(t *testing.T) {
	resp := map[string]any{"status": "deleted", "account_id": "acme"}
	fc := &fakeClient{resp: map[string]any{"delete_account": resp}}
	sink := &captureSink{}
	a := New(fc, sink)

	require.NoError(t, a.DeleteAccount(context.Background(), "acme", Options{}))
	require.Len(t, sink.values, 1)
	assert.Equal(t, resp, sink.values[0])
}

func TestRemoveUserEmptyResponseSynthesizesConfirmation(t *testing.T) {
	fc := &fakeClient{resp: map[string]any{"remove_user": map[string]any{}}}
	sink := &captureSink{}
	a := New(fc, sink)

	require.NoError(t, a.RemoveUser(context.Background(), "acme", "bob", Options{}))
	require.Len(t, sink.values, 1)
	assert.Equal(t, map[string]any{"account_id": "acme", "user_id": "bob"}, sink.values[0])
}

func TestSetRoleNoNormalization(t *testing.T) {
	resp := map[string]any{"account_id": "a1", "user_id": "u1", "role": "admin"}
	fc := &fakeClient{resp: map[string]any{"set_role": resp}}
	sink := &captureSink{}
	a := New(fc, sink)

	require.NoError(t, a.SetRole(context.Background(), "a1", "u1", "admin", Options{}))
	require.Len(t, sink.values, 1)
	assert.Equal(t, resp, sink.values[0])
}

func TestCreateAccountRawResponseAlwaysReturned(t *testing.T) {
	// Even a nil reply is rendered as-is: create is not identity-confirming.
	fc := &fakeClient{}
	sink := &captureSink{}
	a := New(fc, sink)

	require.NoError(t, a.CreateAccount(context.Background(), "acme", "alice", Options{}))
	require.Len(t, sink.values, 1)
	assert.Nil(t, sink.values[0])
}

func TestListOperationsPassThrough(t *testing.T) {
	accounts := []any{map[string]any{"account_id": "a1"}}
	users := []any{map[string]any{"user_id": "u1"}}
	fc := &fakeClient{resp: map[string]any{"list_accounts": accounts, "list_users": users}}
	sink := &captureSink{}
	a := New(fc, sink)

	require.NoError(t, a.ListAccounts(context.Background(), Options{}))
	require.NoError(t, a.ListUsers(context.Background(), "a1", Options{}))

	require.Len(t, sink.values, 2)
	assert.Equal(t, accounts, sink.values[0])
	assert.Equal(t, users, sink.values[1])
}

func TestTransportErrorPropagatedSinkNotCalled(t *testing.T) {
	boom := errors.New("connection refused")
	fc := &fakeClient{err: boom}
	sink := &captureSink{}
	a := New(fc, sink)

	ctx := context.Background()
	opts := Options{}

	assert.ErrorIs(t, a.CreateAccount(ctx, "a", "u", opts), boom)
	assert.ErrorIs(t, a.ListAccounts(ctx, opts), boom)
	assert.ErrorIs(t, a.DeleteAccount(ctx, "a", opts), boom)
	assert.ErrorIs(t, a.RegisterUser(ctx, "a", "u", "admin", opts), boom)
	assert.ErrorIs(t, a.ListUsers(ctx, "a", opts), boom)
	assert.ErrorIs(t, a.RemoveUser(ctx, "a", "u", opts), boom)
	assert.ErrorIs(t, a.SetRole(ctx, "a", "u", "admin", opts), boom)
	assert.ErrorIs(t, a.RegenerateKey(ctx, "a", "u", opts), boom)

	assert.Empty(t, sink.values)
}

func TestEachOperationCallsTransportOnce(t *testing.T) {
	fc := &fakeClient{}
	sink := &captureSink{}
	a := New(fc, sink)
	ctx := context.Background()

	require.NoError(t, a.RegisterUser(ctx, "a", "u", "member", Options{}))
	require.NoError(t, a.RegenerateKey(ctx, "a", "u", Options{}))

	assert.Equal(t, []string{"register_user", "regenerate_key"}, fc.calls)
}
