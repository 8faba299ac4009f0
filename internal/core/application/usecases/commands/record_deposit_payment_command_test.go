package commands_test

import (
	"testing"

	"saddleoms/internal/core/application/usecases/commands"
	"saddleoms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordDepositPaymentCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewRecordDepositPaymentCommand(7, 400)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cmd.OrderID())
	assert.InDelta(t, 400.0, cmd.Amount(), 0.001)
}

func TestNewRecordDepositPaymentCommand_NonPositiveAmount(t *testing.T) {
	_, err := commands.NewRecordDepositPaymentCommand(7, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewRecordDepositPaymentCommand(7, -50)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
