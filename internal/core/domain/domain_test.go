package domain_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

func TestParsePaymentMethod(t *testing.T) {
	for in, want := range map[string]domain.PaymentMethod{
		"Credit Card":   domain.PaymentCreditCard,
		"credit_card":   domain.PaymentCreditCard,
		"CreditCard":    domain.PaymentCreditCard,
		" cash ":        domain.PaymentCash,
		"Bank Transfer": domain.PaymentBankTransfer,
		"bank_transfer": domain.PaymentBankTransfer,
	} {
		got, err := domain.ParsePaymentMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := domain.ParsePaymentMethod("bitcoin")
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentMethod)
}

func TestParseRoomStatus(t *testing.T) {
	st, err := domain.ParseRoomStatus("maintenance")
	require.NoError(t, err)
	assert.Equal(t, domain.RoomMaintenance, st)

	_, err = domain.ParseRoomStatus("dirty")
	assert.ErrorIs(t, err, domain.ErrInvalidRoomStatus)
}

func TestParseRole(t *testing.T) {
	r, err := domain.ParseRole("Staff")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, r)

	_, err = domain.ParseRole("root")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestStoreError_WrapsCause(t *testing.T) {
	err := domain.StoreError("insert booking", sql.ErrConnDone)

	assert.ErrorIs(t, err, domain.ErrStore)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Contains(t, err.Error(), "insert booking")
}

func TestStoreError_KeepsDomainErrors(t *testing.T) {
	assert.Nil(t, domain.StoreError("noop", nil))
	assert.Same(t, domain.ErrRoomNotFound, domain.StoreError("find room", domain.ErrRoomNotFound))

	wrapped := domain.StoreError("outer", domain.StoreError("inner", errors.New("boom")))
	assert.ErrorIs(t, wrapped, domain.ErrStore)
	assert.NotContains(t, wrapped.Error(), "outer")
}
