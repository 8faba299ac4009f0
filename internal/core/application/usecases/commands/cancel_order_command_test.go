package commands_test

import (
	"testing"

	"saddleoms/internal/core/application/usecases/commands"
	"saddleoms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCancelOrderCommand(7, "customer changed their mind")
	require.NoError(t, err)
	assert.Equal(t, int64(7), cmd.OrderID())
	assert.Equal(t, "customer changed their mind", cmd.Reason())
}

func TestNewCancelOrderCommand_BlankReason(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(7, "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
