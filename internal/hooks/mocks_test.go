package hooks

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Mock implementations for testing

type mockFileSystem struct {
	statFunc     func(name string) (os.FileInfo, error)
	readFileFunc func(name string) ([]byte, error)
	getwdFunc    func() (string, error)
}

func (m *mockFileSystem) Stat(name string) (os.FileInfo, error) {
	if m.statFunc != nil {
		return m.statFunc(name)
	}
	return nil, os.ErrNotExist
}

func (m *mockFileSystem) ReadFile(name string) ([]byte, error) {
	if m.readFileFunc != nil {
		return m.readFileFunc(name)
	}
	return nil, os.ErrNotExist
}

func (m *mockFileSystem) Getwd() (string, error) {
	if m.getwdFunc != nil {
		return m.getwdFunc()
	}
	return "/repo", nil
}

// recordedCall is one RunContext invocation seen by mockCommandRunner.
type recordedCall struct {
	dir  string
	name string
	args []string
}

func (c recordedCall) String() string {
	return strings.TrimSpace(c.name + " " + strings.Join(c.args, " "))
}

type mockCommandRunner struct {
	runContextFunc func(ctx context.Context, dir, name string, args ...string) ([]byte, error)
	outputFunc     func(ctx context.Context, dir, name string, args ...string) ([]byte, error)
	lookPathFunc   func(file string) (string, error)
	calls          []recordedCall
}

func (m *mockCommandRunner) RunContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	m.calls = append(m.calls, recordedCall{dir: dir, name: name, args: args})
	if m.runContextFunc != nil {
		return m.runContextFunc(ctx, dir, name, args...)
	}
	return nil, nil
}

// OutputContext falls back to runContextFunc when no outputFunc is set.
func (m *mockCommandRunner) OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	if m.outputFunc == nil {
		return m.RunContext(ctx, dir, name, args...)
	}
	m.calls = append(m.calls, recordedCall{dir: dir, name: name, args: args})
	return m.outputFunc(ctx, dir, name, args...)
}

func (m *mockCommandRunner) LookPath(file string) (string, error) {
	if m.lookPathFunc != nil {
		return m.lookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}

// commandLines returns every recorded call as a command line.
func (m *mockCommandRunner) commandLines() []string {
	lines := make([]string, 0, len(m.calls))
	for _, c := range m.calls {
		lines = append(lines, c.String())
	}
	return lines
}

// testDependencies wraps Dependencies with typed access to the mocks.
type testDependencies struct {
	*Dependencies
	MockFS     *mockFileSystem
	MockRunner *mockCommandRunner
	Out        *bytes.Buffer
}

func createTestDependencies() *testDependencies {
	mockFS := &mockFileSystem{}
	mockRunner := &mockCommandRunner{}
	out := &bytes.Buffer{}

	return &testDependencies{
		Dependencies: &Dependencies{
			FS:     mockFS,
			Runner: mockRunner,
			Stdout: out,
			Stderr: out,
			Logger: zerolog.Nop(),
		},
		MockFS:     mockFS,
		MockRunner: mockRunner,
		Out:        out,
	}
}

// manifestAt makes Stat succeed only for the Cargo.toml in dir.
func manifestAt(dir string) func(string) (os.FileInfo, error) {
	want := dir + "/" + CargoManifest
	return func(name string) (os.FileInfo, error) {
		if name == want {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", name, os.ErrNotExist)
	}
}

// failing returns a RunContext func that fails whenever the command line
// starts with one of the given prefixes.
func failing(output string, prefixes ...string) func(context.Context, string, string, ...string) ([]byte, error) {
	return func(_ context.Context, _, name string, args ...string) ([]byte, error) {
		line := strings.TrimSpace(name + " " + strings.Join(args, " "))
		for _, p := range prefixes {
			if strings.HasPrefix(line, p) {
				return []byte(output), fmt.Errorf("run command %s: exit status 1", name)
			}
		}
		return []byte("ok\n"), nil
	}
}
