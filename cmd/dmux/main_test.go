package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	color.NoColor = true
}

// ---------------------------------------------------------------------------
// fakeTmux — records what the CLI asked tmux to do
// ---------------------------------------------------------------------------

type fakeTmux struct {
	sessions map[string][]string // session -> window names in creation order
	calls    []string
	attached []string
}

func newFakeTmux() *fakeTmux {
	return &fakeTmux{sessions: make(map[string][]string)}
}

func (f *fakeTmux) HasSession(name string) (bool, error) {
	_, ok := f.sessions[name]
	return ok, nil
}
func (f *fakeTmux) CreateSession(name string) error {
	f.calls = append(f.calls, "new-session "+name)
	f.sessions[name] = nil
	return nil
}
func (f *fakeTmux) FindWindow(session, name string) (string, bool, error) {
	for _, w := range f.sessions[session] {
		if w == name {
			return "@" + name, true, nil
		}
	}
	return "", false, nil
}
func (f *fakeTmux) NewWindow(session, name string) (string, error) {
	f.calls = append(f.calls, "new-window "+name)
	f.sessions[session] = append(f.sessions[session], name)
	return "@" + name, nil
}
func (f *fakeTmux) ListPanes(target string) ([]string, error) {
	return []string{"%" + strings.TrimPrefix(target, "@")}, nil
}
func (f *fakeTmux) SendSignal(paneID, signal string) error {
	f.calls = append(f.calls, "signal "+paneID+" "+signal)
	return nil
}
func (f *fakeTmux) SendText(paneID, text string, enter bool) error {
	f.calls = append(f.calls, fmt.Sprintf("text %s %s enter=%v", paneID, text, enter))
	return nil
}
func (f *fakeTmux) PaneCommand(paneID string) (string, error) { return "bash", nil }
func (f *fakeTmux) Attach(session string) error {
	f.attached = append(f.attached, session)
	return nil
}

// testEnv wires an app to a fake tmux and files under a temp dir.
type testEnv struct {
	app        *app
	tmux       *fakeTmux
	configPath string
	logPath    string
}

func newTestEnv(t *testing.T, configINI string, interactive bool) *testEnv {
	t.Helper()
	dir := t.TempDir()
	env := &testEnv{
		tmux:       newFakeTmux(),
		configPath: filepath.Join(dir, "config.ini"),
		logPath:    filepath.Join(dir, "dmux.log"),
	}
	if configINI != "" {
		if err := os.WriteFile(env.configPath, []byte(configINI), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	env.app = &app{
		tmux:        env.tmux,
		interactive: func() bool { return interactive },
	}
	t.Cleanup(env.app.close)
	return env
}

// run executes the root command with --config/--log-file pointing into the temp dir.
func (e *testEnv) run(args ...string) (string, error) {
	cmd := newRootCmdWith(e.app)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"--config", e.configPath, "--log-file", e.logPath}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func (e *testEnv) logContents(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(e.logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// root / version
// ---------------------------------------------------------------------------

func TestVersionCmd(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "dmux dev") {
		t.Errorf("expected output to contain 'dmux dev', got: %s", out)
	}
	if !strings.Contains(out, "commit: none") {
		t.Errorf("expected output to contain 'commit: none', got: %s", out)
	}
}

func TestVersionCmdWithCustomValues(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	Version, Commit, Date = "1.0.0", "abc123", "2026-01-01"
	defer func() { Version, Commit, Date = origVersion, origCommit, origDate }()

	cmd := newVersionCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.Run(cmd, nil)

	expected := "dmux 1.0.0 (commit: abc123, built: 2026-01-01)\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestRootCmdHelpListsVerbs(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("help command failed: %v", err)
	}

	out := buf.String()
	for _, verb := range []string{"attach", "start", "stop", "restart", "list", "doctor", "version"} {
		if !strings.Contains(out, verb) {
			t.Errorf("root help should list %q, got: %s", verb, out)
		}
	}
	for _, flag := range []string{"--config", "--log-file", "--session"} {
		if !strings.Contains(out, flag) {
			t.Errorf("root help should list %s flag", flag)
		}
	}
}

func TestRootCmdNoArgs(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	// Root command with no args should print help (not error)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("root command with no args failed: %v", err)
	}
}

func TestExecuteSuccess(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{})
	if code := execute(cmd); code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
}

func TestExecuteError(t *testing.T) {
	cmd := &cobra.Command{
		Use:           "failing",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("intentional error")
		},
	}
	if code := execute(cmd); code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}

func TestAppSetup_DefaultsFromHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	a := newApp()
	defer a.close()

	if err := a.setup(); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if a.configPath != filepath.Join(home, ".config", "dmux", "config.ini") {
		t.Errorf("configPath = %q", a.configPath)
	}
	if a.session != "dmux" {
		t.Errorf("session = %q, want dmux", a.session)
	}
	if _, err := os.Stat(filepath.Join(home, ".config", "dmux")); err != nil {
		t.Errorf("config dir not created: %v", err)
	}
}
