package shell_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rapp/internal/adapters/shell"
	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
	"go.trai.ch/rapp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_CapturesOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("line1")
	mockLogger.EXPECT().Debug("line2")
	mockLogger.EXPECT().Debug("oops")

	executor := shell.NewExecutor(mockLogger)

	res, err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo line1; echo line2; echo oops >&2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)

	assert.True(t, res.Success())
	assert.Equal(t, "line1\nline2\n", res.Stdout)
	assert.Equal(t, "oops\n", res.Stderr)
}

func TestExecutor_Execute_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("part1part2")
	mockLogger.EXPECT().Debug("tail")

	executor := shell.NewExecutor(mockLogger)

	res, err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "printf part1; sleep 0.1; echo part2; printf tail"},
	})
	require.NoError(t, err)
	assert.Equal(t, "part1part2\ntail", res.Stdout)
}

func TestExecutor_Execute_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("failing")

	executor := shell.NewExecutor(mockLogger)

	res, err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo failing >&2; exit 3"},
	})
	require.NoError(t, err)
	assert.False(t, res.Success())
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "failing\n", res.Stderr)
}

func TestExecutor_Execute_DirAndEnv(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	executor := shell.NewExecutor(mockLogger)

	res, err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", `pwd -P; echo "$RAPP_TEST_VAR"`},
		Dir:  dir,
		Env:  []string{"RAPP_TEST_VAR=test-value-123"},
	})
	require.NoError(t, err)
	assert.Equal(t, dir+"\ntest-value-123\n", res.Stdout)
}

func TestExecutor_Execute_ExtraWriters(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).Times(0)

	var stdout, stderr bytes.Buffer
	executor := shell.NewExecutor(mockLogger)

	_, err := executor.Execute(context.Background(), domain.Command{
		Name:   "sh",
		Args:   []string{"-c", "echo out; echo err >&2"},
		Stdout: &stdout,
		Stderr: &stderr,
	})
	require.NoError(t, err)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecutor_Execute_WithVertex(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	// Logger shouldn't be used when Vertex is present
	mockLogger.EXPECT().Debug(gomock.Any()).Times(0)

	var stdoutBuf, stderrBuf bytes.Buffer
	mockVertex := mocks.NewMockVertex(ctrl)
	mockVertex.EXPECT().Stdout().Return(&stdoutBuf).AnyTimes()
	mockVertex.EXPECT().Stderr().Return(&stderrBuf).AnyTimes()

	executor := shell.NewExecutor(mockLogger)
	ctx := ports.ContextWithVertex(context.Background(), mockVertex)

	_, err := executor.Execute(ctx, domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo hello to stdout; echo hello to stderr >&2"},
	})
	require.NoError(t, err)

	assert.Equal(t, "hello to stdout\n", stdoutBuf.String())
	assert.Equal(t, "hello to stderr\n", stderrBuf.String())
}

func TestExecutor_Execute_ExtraWritersBypassVertex(t *testing.T) {
	ctrl := gomock.NewController(t)

	var vertexOut bytes.Buffer
	mockVertex := mocks.NewMockVertex(ctrl)
	mockVertex.EXPECT().Stderr().Return(&vertexOut).AnyTimes()
	mockVertex.EXPECT().Stdout().Times(0)

	var stdout bytes.Buffer
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))
	ctx := ports.ContextWithVertex(context.Background(), mockVertex)

	res, err := executor.Execute(ctx, domain.Command{
		Name:   "sh",
		Args:   []string{"-c", "echo page; echo trace >&2"},
		Stdout: &stdout,
	})
	require.NoError(t, err)
	assert.Equal(t, "page\n", stdout.String())
	assert.Equal(t, "page\n", res.Stdout)
	assert.Equal(t, "trace\n", vertexOut.String(), "only the stream without a writer reaches the vertex")
}

func TestExecutor_Execute_StartFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	_, err := executor.Execute(context.Background(), domain.Command{
		Name: filepath.Join(t.TempDir(), "does-not-exist"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCommandStartFailed.Error())
}
