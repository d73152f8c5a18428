package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rapp/internal/adapters/logger"
	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing uncolored output into a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(lg *logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(lg *logger.Logger) { lg.Info("some message") },
			goldenName: "info_basic",
		},
		{
			name:       "info multiline",
			log:        func(lg *logger.Logger) { lg.Info("line1\nline2") },
			goldenName: "info_multiline",
		},
		{
			name:       "warn",
			log:        func(lg *logger.Logger) { lg.Warn("some warning") },
			goldenName: "warn_basic",
		},
		{
			name: "debug enabled",
			log: func(lg *logger.Logger) {
				lg.SetLevel(domain.LogLevelDebug)
				lg.Debug("debug message")
			},
			goldenName: "debug_enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_DebugSuppressedByDefault(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Debug("hidden")

	assert.Empty(t, buf.String())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 30: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("database connection failed"), "failed to load user data"),
				"failed to process request",
			),
			goldenName: "error_chain_zerr",
		},
		{
			name: "stdlib chain",
			err: fmt.Errorf("failed to initialize service: %w",
				fmt.Errorf("failed to connect to database: %w", errors.New("connection refused"))),
			goldenName: "error_chain_stdlib",
		},
		{
			name: "metadata",
			err: zerr.With(
				zerr.With(zerr.Wrap(domain.ErrAmbiguousCandidates, "resolve candidate"), "searched_dir", "/ws"),
				"candidates", []string{"bar", "foo"},
			),
			goldenName: "error_metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(errors.New("test error message"))

	output := buf.String()
	assert.Contains(t, output, `"error":"test error message"`)
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.NotContains(t, output, "✗")
}

func TestNewFromSettings(t *testing.T) {
	t.Run("applies level", func(t *testing.T) {
		s := domain.DefaultSettings()
		s.LogLevel = "warn"

		lg, err := logger.NewFromSettings(&s)
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		lg.SetOutput(buf)
		lg.Info("dropped")
		lg.Warn("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("json format", func(t *testing.T) {
		s := domain.DefaultSettings()
		s.LogFormat = domain.LogFormatJSON

		lg, err := logger.NewFromSettings(&s)
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		lg.SetOutput(buf)
		lg.Info("hello")

		assert.Contains(t, buf.String(), `"msg":"hello"`)
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		s := domain.DefaultSettings()
		s.LogLevel = "loud"

		_, err := logger.NewFromSettings(&s)
		require.ErrorIs(t, err, domain.ErrInvalidSettings)

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, "loud", zErr.Metadata()["log_level"])
	})
}
