package root

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitcore/internal/storage"
)

type cli struct {
	t   *testing.T
	db  string
	cfg string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(storage.EnvDBPath, "")
	return &cli{
		t:   t,
		db:  filepath.Join(home, "data", "hc.db"),
		cfg: filepath.Join(home, "config.toml"),
	}
}

func (c *cli) run(args ...string) (string, string, int) {
	c.t.Helper()
	var stdout, stderr bytes.Buffer
	full := append([]string{"--db", c.db, "--config", c.cfg}, args...)
	code := run(full, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func (c *cli) habits() []storage.Habit {
	c.t.Helper()
	out, errOut, code := c.run("list", "--json")
	require.Equal(c.t, 0, code, errOut)
	var hs []storage.Habit
	require.NoError(c.t, json.Unmarshal([]byte(out), &hs))
	return hs
}

func TestAddDoneListStatus(t *testing.T) {
	c := newCLI(t)

	out, _, code := c.run("add", "Read", "20", "pages")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Read 20 pages")

	hs := c.habits()
	require.Len(t, hs, 1)
	id := fmt.Sprint(hs[0].ID)

	out, _, code = c.run("done", id)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "+20 XP")
	assert.Contains(t, out, "1 day streak")

	out, _, code = c.run("done", "#"+id)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Already done today")

	out, _, code = c.run("status")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "20/100")
	assert.Contains(t, out, "Best streak: 1")

	hs = c.habits()
	assert.True(t, hs[0].CompletedToday)
	assert.Equal(t, 1, hs[0].Streak)
}

func TestAddBlankNameIsNoop(t *testing.T) {
	c := newCLI(t)
	out, _, code := c.run("add", "   ")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "nothing added")
	assert.Empty(t, c.habits())
}

func TestDoneUnknownAndInvalidIDs(t *testing.T) {
	c := newCLI(t)

	_, errOut, code := c.run("done", "abc")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid habit id")

	out, _, code := c.run("done", "12345")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "#12345 not found; nothing completed.")
}

func TestInvalidLogLevelCanBeRepaired(t *testing.T) {
	c := newCLI(t)
	require.NoError(t, os.WriteFile(c.cfg, []byte("log_level = \"chatty\"\n"), 0o644))

	_, errOut, code := c.run("config", "set", "log_level", "info")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, errOut, "invalid log_level")

	out, errOut, code := c.run("config", "get", "log_level")
	require.Equal(t, 0, code)
	assert.Equal(t, "info\n", out)
	assert.Empty(t, errOut)
}

func TestRunClosesLogFile(t *testing.T) {
	c := newCLI(t)
	logPath := filepath.Join(t.TempDir(), "hc.log")
	_, _, code := c.run("config", "set", "log_path", logPath)
	require.Equal(t, 0, code)

	_, _, code = c.run("add", "Walk")
	require.Equal(t, 0, code)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "habit created")
}

func TestRmAndReset(t *testing.T) {
	c := newCLI(t)
	c.run("add", "A")
	c.run("add", "B")
	hs := c.habits()
	require.Len(t, hs, 2)
	assert.Equal(t, "B", hs[0].Name)

	_, _, code := c.run("done", fmt.Sprint(hs[0].ID))
	require.Equal(t, 0, code)
	_, _, code = c.run("reset")
	require.Equal(t, 0, code)
	hs = c.habits()
	assert.False(t, hs[0].CompletedToday)
	assert.Equal(t, 1, hs[0].Streak)

	out, _, code := c.run("rm", fmt.Sprint(hs[1].ID))
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Deleted")
	out, _, code = c.run("rm", "999")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "nothing deleted")
	assert.Len(t, c.habits(), 1)
}

func TestConfigSetGet(t *testing.T) {
	c := newCLI(t)

	_, _, code := c.run("config", "set", "log_level", "debug")
	require.Equal(t, 0, code)
	out, _, code := c.run("config", "get", "log_level")
	require.Equal(t, 0, code)
	assert.Equal(t, "debug\n", out)

	_, errOut, code := c.run("config", "set", "nope", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown config key")

	_, err := os.Stat(c.cfg)
	assert.NoError(t, err)
}

func TestDBPathFromConfig(t *testing.T) {
	c := newCLI(t)
	alt := filepath.Join(t.TempDir(), "alt.db")

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"--config", c.cfg, "config", "set", "db_path", alt}, &stdout, &stderr), stderr.String())
	require.Equal(t, 0, run([]string{"--config", c.cfg, "add", "Walk"}, &stdout, &stderr), stderr.String())

	_, err := os.Stat(alt)
	assert.NoError(t, err)
}

func TestEphemeralLeavesNoDatabase(t *testing.T) {
	c := newCLI(t)
	out, errOut, code := c.run("--ephemeral", "add", "Stretch")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Stretch")

	_, err := os.Stat(c.db)
	assert.True(t, os.IsNotExist(err))
}
