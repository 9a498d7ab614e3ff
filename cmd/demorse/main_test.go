package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/demorse/decode"
)

func TestDecodeConfigFlags(t *testing.T) {
	defaults := decode.DefaultConfig()

	t.Run("defaults match decoder defaults", func(t *testing.T) {
		app := &cli.App{
			Name:  "test",
			Flags: decodeFlags(),
			Action: func(c *cli.Context) error {
				config := decodeConfig(c)
				assert.Equal(t, defaults.BeamWidth, config.BeamWidth)
				assert.Equal(t, defaults.MaxWordLen, config.MaxWordLen)
				assert.Equal(t, defaults.MaxResults, config.MaxResults)
				assert.True(t, config.ReversePolarity)
				return nil
			},
		}
		require.NoError(t, app.Run([]string{"test"}))
	})

	t.Run("flags override defaults", func(t *testing.T) {
		app := &cli.App{
			Name:  "test",
			Flags: decodeFlags(),
			Action: func(c *cli.Context) error {
				config := decodeConfig(c)
				assert.Equal(t, 500, config.BeamWidth)
				assert.Equal(t, 8, config.MaxWordLen)
				assert.Equal(t, 5, config.MaxResults)
				assert.False(t, config.ReversePolarity)
				return nil
			},
		}
		require.NoError(t, app.Run([]string{"test",
			"--beam-width", "500",
			"--max-word-len", "8",
			"--max-results", "5",
			"--no-reverse"}))
	})
}

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}
	}

	t.Run("accepts valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				require.NoError(t, newApp().Run([]string{"test", "--log-level", level}))
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, level := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(level, func(t *testing.T) {
				require.NoError(t, newApp().Run([]string{"test", "--log-level", level}))
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
		assert.Contains(t, err.Error(), "loud")
	})

	t.Run("log-level flag has alias -l", func(t *testing.T) {
		require.NoError(t, newApp().Run([]string{"test", "-l", "debug"}))
	})
}
