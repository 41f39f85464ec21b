package admin

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/internal/mock"
	"github.com/MKhiriev/go-weather-keeper/internal/service"
	"github.com/MKhiriev/go-weather-keeper/models"
)

func newTestCommand(t *testing.T, in string) (*Command, *mock.MockAccountService, *bytes.Buffer) {
	t.Helper()

	accounts := mock.NewMockAccountService(gomock.NewController(t))
	out := &bytes.Buffer{}
	return NewCommand(accounts, strings.NewReader(in), out, logger.Nop()), accounts, out
}

func alice(enabled bool) models.Account {
	return models.Account{
		ID:        1,
		Username:  "alice",
		Enabled:   enabled,
		CreatedAt: time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestCommand_UsageErrors(t *testing.T) {
	cmd, _, _ := newTestCommand(t, "")

	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "empty", args: nil, want: ErrUsage},
		{name: "missing username", args: []string{"enable"}, want: ErrUsage},
		{name: "unknown flag", args: []string{"enable", "-x"}, want: ErrUsage},
		{name: "unknown command", args: []string{"promote", "-u", "alice"}, want: ErrUnknownCommand},
		{name: "rotate without new secret", args: []string{"rotate", "-u", "alice", "-p", "S3cret!"}, want: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, cmd.Run(context.Background(), tt.args), tt.want)
		})
	}
}

func TestCommand_Available(t *testing.T) {
	cmd, accounts, out := newTestCommand(t, "")

	accounts.EXPECT().UsernameAvailable(gomock.Any(), "alice").Return(true, nil)
	accounts.EXPECT().UsernameAvailable(gomock.Any(), "bob").Return(false, nil)

	require.NoError(t, cmd.Run(context.Background(), []string{"available", "-u", "alice"}))
	require.NoError(t, cmd.Run(context.Background(), []string{"available", "-u", "bob"}))
	assert.Equal(t, "available\ntaken\n", out.String())
}

func TestCommand_CreateReadsSecretFromInput(t *testing.T) {
	cmd, accounts, out := newTestCommand(t, "S3cret!\n")

	accounts.EXPECT().CreateAccount(gomock.Any(), "alice", "S3cret!").Return(alice(false), true, nil)

	require.NoError(t, cmd.Run(context.Background(), []string{"create", "-u", "alice"}))
	assert.Equal(t, "<Account: id: 1 username: alice> disabled\n", out.String())
}

func TestCommand_CreateTaken(t *testing.T) {
	cmd, accounts, out := newTestCommand(t, "")

	accounts.EXPECT().CreateAccount(gomock.Any(), "alice", "S3cret!").Return(models.Account{}, false, nil)

	err := cmd.Run(context.Background(), []string{"create", "-u", "alice", "-p", "S3cret!"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Empty(t, out.String())
}

func TestCommand_EnableDisable(t *testing.T) {
	cmd, accounts, out := newTestCommand(t, "")

	gomock.InOrder(
		accounts.EXPECT().EnableAccount(gomock.Any(), "alice").Return(alice(true), nil),
		accounts.EXPECT().DisableAccount(gomock.Any(), "alice").Return(alice(false), nil),
	)

	require.NoError(t, cmd.Run(context.Background(), []string{"enable", "-u", "alice"}))
	require.NoError(t, cmd.Run(context.Background(), []string{"disable", "-u", "alice"}))
	assert.Equal(t, "<Account: id: 1 username: alice> enabled\n<Account: id: 1 username: alice> disabled\n", out.String())
}

func TestCommand_ServiceErrorsPropagate(t *testing.T) {
	cmd, accounts, _ := newTestCommand(t, "")

	accounts.EXPECT().DeleteAccount(gomock.Any(), "ghost").Return(service.ErrNotFound)
	accounts.EXPECT().RotateSecret(gomock.Any(), "alice", "wrong", "N3w!").Return(models.Account{}, service.ErrSecretMismatch)

	assert.ErrorIs(t, cmd.Run(context.Background(), []string{"delete", "-u", "ghost"}), service.ErrNotFound)
	assert.ErrorIs(t,
		cmd.Run(context.Background(), []string{"rotate", "-u", "alice", "-p", "wrong", "-n", "N3w!"}),
		service.ErrSecretMismatch)
}

func TestCommand_Delete(t *testing.T) {
	cmd, accounts, out := newTestCommand(t, "")

	accounts.EXPECT().DeleteAccount(gomock.Any(), "alice").Return(nil)

	require.NoError(t, cmd.Run(context.Background(), []string{"delete", "-u", "alice"}))
	assert.Equal(t, "deleted alice\n", out.String())
}
