package commands_test

import (
	"testing"

	"reservation/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeFlightPriceCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewChangeFlightPriceCommand(101, 150)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 101, cmd.FlightNumber())
		assert.InDelta(t, 150.0, cmd.NewPrice(), 0.001)
	})

	t.Run("should fail on invalid input", func(t *testing.T) {
		_, err := commands.NewChangeFlightPriceCommand(0, -1)

		require.ErrorIs(t, err, commands.ErrFlightNumberIsInvalid)
		require.ErrorIs(t, err, commands.ErrNewPriceIsInvalid)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.ChangeFlightPriceCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrChangeFlightPriceCommandIsNotConstructed)
	})
}
