package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rapp/cmd/rapp/commands"
	"go.trai.ch/rapp/internal/adapters/watcher"
	"go.trai.ch/rapp/internal/app"
	"go.trai.ch/rapp/internal/build"
)

type mockApp struct {
	showFunc  func(ctx context.Context, opts app.ShowOptions) error
	watchFunc func(ctx context.Context, opts app.WatchOptions) error
	initFunc  func(ctx context.Context, opts app.InitOptions) error
	cleanFunc func(ctx context.Context, opts app.CleanOptions) error
}

func (m *mockApp) Show(ctx context.Context, opts app.ShowOptions) error {
	if m.showFunc != nil {
		return m.showFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Init(ctx context.Context, opts app.InitOptions) error {
	if m.initFunc != nil {
		return m.initFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Show(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.ShowOptions
		mock := &mockApp{
			showFunc: func(_ context.Context, opts app.ShowOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"show", "--rebuild", "--use-relative-paths", "-C", "/ws"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.ShowOptions{Dir: "/ws", Rebuild: true, UseRelativePaths: true}, captured)
	})

	t.Run("defaults", func(t *testing.T) {
		var captured app.ShowOptions
		mock := &mockApp{
			showFunc: func(_ context.Context, opts app.ShowOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"show"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.ShowOptions{}, captured)
	})

	t.Run("returns error on show failure", func(t *testing.T) {
		mock := &mockApp{
			showFunc: func(context.Context, app.ShowOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"show"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"show", "extra"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Watch(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.WatchOptions
		mock := &mockApp{
			watchFunc: func(_ context.Context, opts app.WatchOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"watch", "--use-relative-paths", "--debounce", "1s"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, captured.UseRelativePaths)
		assert.False(t, captured.Rebuild)
		assert.Equal(t, time.Second, captured.Debounce)
	})

	t.Run("default debounce", func(t *testing.T) {
		var captured app.WatchOptions
		mock := &mockApp{
			watchFunc: func(_ context.Context, opts app.WatchOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"watch"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, watcher.DefaultDebounceWindow, captured.Debounce)
	})
}

func TestCommands_Init(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want app.InitOptions
	}{
		{"working directory", []string{"init"}, app.InitOptions{}},
		{"path argument", []string{"init", "crates/app"}, app.InitOptions{Dir: "crates/app"}},
		{"dir flag", []string{"init", "-C", "crates/app"}, app.InitOptions{Dir: "crates/app"}},
		{"explicit name", []string{"init", "crates/app", "--name", "gallery"}, app.InitOptions{Dir: "crates/app", Name: "gallery"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured app.InitOptions
			mock := &mockApp{
				initFunc: func(_ context.Context, opts app.InitOptions) error {
					captured = opts
					return nil
				},
			}

			cli := commands.New(mock)
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			assert.Equal(t, tt.want, captured)
		})
	}
}

func TestCommands_Clean(t *testing.T) {
	var captured app.CleanOptions
	called := false
	mock := &mockApp{
		cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
			captured = opts
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"clean", "--dir", "/ws"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
	assert.Equal(t, "/ws", captured.Dir)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "rapp version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "rapp version "+build.Version)
}
