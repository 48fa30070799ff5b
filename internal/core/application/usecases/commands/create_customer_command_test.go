package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/pkg/errs"
)

func TestNewCreateCustomerCommand_Valid(t *testing.T) {
	cmd, err := commands.NewCreateCustomerCommand("Alice Jones", "alice@example.com", "+1-555-0101", "12345678900")
	require.NoError(t, err)
	assert.Equal(t, "Alice Jones", cmd.Name())
	assert.Equal(t, "alice@example.com", cmd.Email())
	assert.Equal(t, "+1-555-0101", cmd.Phone())
	assert.Equal(t, "12345678900", cmd.DocumentNumber())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateCustomerCommand_PhoneOptional(t *testing.T) {
	cmd, err := commands.NewCreateCustomerCommand("Alice Jones", "alice@example.com", "", "12345678900")
	require.NoError(t, err)
	assert.Empty(t, cmd.Phone())
}

func TestNewCreateCustomerCommand_MissingFields(t *testing.T) {
	tests := map[string]struct {
		name           string
		email          string
		documentNumber string
	}{
		"empty name":            {"", "alice@example.com", "12345678900"},
		"empty email":           {"Alice Jones", "", "12345678900"},
		"empty document number": {"Alice Jones", "alice@example.com", ""},
		"all empty":             {"", "", ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := commands.NewCreateCustomerCommand(tc.name, tc.email, "", tc.documentNumber)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
		})
	}
}

func TestCreateCustomerCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.CreateCustomerCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateCustomerCommandIsNotConstructed)
}
