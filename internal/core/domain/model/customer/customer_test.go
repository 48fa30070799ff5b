package customer_test

import (
	"testing"
	"time"

	"orderflow/internal/core/domain/model/customer"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer_ValidInput(t *testing.T) {
	c, err := customer.NewCustomer("John Doe", "john@example.com", "+1-555-0100", "12345678900")
	require.NoError(t, err)

	assert.Equal(t, int64(0), c.ID())
	assert.Equal(t, "John Doe", c.Name())
	assert.Equal(t, "john@example.com", c.Email())
	assert.Equal(t, "+1-555-0100", c.Phone())
	assert.Equal(t, "12345678900", c.DocumentNumber())
	assert.Equal(t, c.CreatedAt(), c.UpdatedAt())
	require.NoError(t, c.Validate())
}

func TestNewCustomer_PhoneIsOptional(t *testing.T) {
	c, err := customer.NewCustomer("Jane Doe", "jane@example.com", "", "98765432100")
	require.NoError(t, err)
	assert.Empty(t, c.Phone())
}

func TestNewCustomer_InvalidInput(t *testing.T) {
	testCases := []struct {
		name           string
		customerName   string
		email          string
		documentNumber string
		wantErr        error
	}{
		{"blank name", "  ", "john@example.com", "12345678900", errs.ErrValueIsRequired},
		{"empty email", "John Doe", "", "12345678900", errs.ErrValueIsRequired},
		{"malformed email", "John Doe", "not-an-email", "12345678900", errs.ErrValueIsInvalid},
		{"email without domain", "John Doe", "john@", "12345678900", errs.ErrValueIsInvalid},
		{"blank document number", "John Doe", "john@example.com", " ", errs.ErrValueIsRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := customer.NewCustomer(tc.customerName, tc.email, "", tc.documentNumber)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRestoreCustomer(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2024, 3, 2, 11, 0, 0, 0, time.UTC)

	c, err := customer.RestoreCustomer(42, "John Doe", "john@example.com", "", "12345678900", createdAt, updatedAt)
	require.NoError(t, err)

	assert.Equal(t, int64(42), c.ID())
	assert.Equal(t, createdAt, c.CreatedAt())
	assert.Equal(t, updatedAt, c.UpdatedAt())
}

func TestRestoreCustomer_InvalidID(t *testing.T) {
	now := time.Now().UTC()
	_, err := customer.RestoreCustomer(0, "John Doe", "john@example.com", "", "12345678900", now, now)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCustomer_Update(t *testing.T) {
	c, err := customer.NewCustomer("John Doe", "john@example.com", "", "12345678900")
	require.NoError(t, err)
	createdAt := c.CreatedAt()

	err = c.Update("John Smith", "smith@example.com", "+1-555-0199", "11122233344")
	require.NoError(t, err)

	assert.Equal(t, "John Smith", c.Name())
	assert.Equal(t, "smith@example.com", c.Email())
	assert.Equal(t, "+1-555-0199", c.Phone())
	assert.Equal(t, "11122233344", c.DocumentNumber())
	assert.Equal(t, createdAt, c.CreatedAt())
	assert.True(t, c.UpdatedAt().After(createdAt) || c.UpdatedAt().Equal(createdAt))
}

func TestCustomer_Update_InvalidInput(t *testing.T) {
	c, err := customer.NewCustomer("John Doe", "john@example.com", "", "12345678900")
	require.NoError(t, err)

	err = c.Update("", "bad-email", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	// The failed update must not leave partial state visible.
	assert.Equal(t, "John Doe", c.Name())
	assert.Equal(t, "john@example.com", c.Email())
	assert.Equal(t, "12345678900", c.DocumentNumber())
}

func TestCustomer_Validate_ZeroValue(t *testing.T) {
	var c customer.Customer
	require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
}
