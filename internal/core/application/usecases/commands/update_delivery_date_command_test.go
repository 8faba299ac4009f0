package commands_test

import (
	"testing"
	"time"

	"saddleoms/internal/core/application/usecases/commands"
	"saddleoms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateDeliveryDateCommand_ValidInput(t *testing.T) {
	date := time.Now().UTC().AddDate(0, 2, 0)
	cmd, err := commands.NewUpdateDeliveryDateCommand(7, date)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cmd.OrderID())
	assert.True(t, date.Equal(cmd.Date()))
}

func TestNewUpdateDeliveryDateCommand_ZeroDate(t *testing.T) {
	_, err := commands.NewUpdateDeliveryDateCommand(7, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
