package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/amirasaad/hookbus/pkg/eventbus"
	"github.com/stretchr/testify/suite"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

type CLITestSuite struct {
	suite.Suite
	dir string
}

func TestCLITestSuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Setenv("EVENTBUS_EVENTS", "")
	s.T().Setenv("EVENTBUS_AUDIT", "false")
}

func (s *CLITestSuite) writeManifest(doc string) string {
	path := filepath.Join(s.dir, "hooks.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func (s *CLITestSuite) execute(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(s.dir, "missing.env")))
	err := cmd.Execute()
	return out.String(), err
}

func (s *CLITestSuite) TestRun() {
	path := s.writeManifest(`
events: [save]
hooks:
  - {event: save, id: log, message: logged}
  - {event: save, message: persisted}
steps:
  - {op: trigger, event: save}
`)
	out, err := s.execute("run", path)
	s.Require().NoError(err)
	s.Equal("> save\n  [log] print: logged\n  [#1] print: persisted\n", out)
}

func (s *CLITestSuite) TestRun_HookOnUndeclaredEvent() {
	path := s.writeManifest("hooks:\n  - {event: unknown}\n")
	_, err := s.execute("run", path)
	s.Require().Error(err)
	s.ErrorIs(err, eventbus.ErrEventNotDeclared)
}

func (s *CLITestSuite) TestRun_StartupEventsFromEnv() {
	s.T().Setenv("EVENTBUS_EVENTS", "boot")
	path := s.writeManifest("hooks:\n  - {event: boot, message: up}\nsteps:\n  - {op: trigger, event: boot}\n")

	out, err := s.execute("run", path)
	s.Require().NoError(err)
	s.Contains(out, "[#0] print: up")
}

func (s *CLITestSuite) TestEvents() {
	path := s.writeManifest(`
events: [save, load]
hooks:
  - {event: save, id: log}
  - {event: save}
steps:
  - {op: trigger, event: save}
`)
	out, err := s.execute("events", path)
	s.Require().NoError(err)
	s.Equal("load handlers=0\nsave handlers=2 ids=[log]\n", out)
}

func (s *CLITestSuite) TestMissingManifest() {
	_, err := s.execute("run", filepath.Join(s.dir, "nope.yaml"))
	s.Error(err)
}

func (s *CLITestSuite) TestVersion() {
	out, err := s.execute("version")
	s.Require().NoError(err)
	s.Equal("hookbus "+version+"\n", out)
}
