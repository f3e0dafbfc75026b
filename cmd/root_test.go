package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/pomodomate/internal/domain"
)

// executeCmd is a helper to execute a cobra command in tests
func executeCmd(cmd *cobra.Command, args ...string) (stdout string, stderr string, err error) {
	bufOut := new(bytes.Buffer)
	bufErr := new(bytes.Buffer)

	cmd.SetOut(bufOut)
	cmd.SetErr(bufErr)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return bufOut.String(), bufErr.String(), err
}

// setupCmdTest isolates the config directory and database, and clears flag
// values left over from earlier executions.
func setupCmdTest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	resetFlags := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	for _, c := range []*cobra.Command{rootCmd, runCmd, statusCmd, settingsCmd, settingsSetCmd, resetCmd, mcpCmd} {
		resetFlags(c.Flags())
		resetFlags(c.PersistentFlags())
	}
	dbPath = ""

	return filepath.Join(home, "test.db")
}

func TestRootCmd_Metadata(t *testing.T) {
	if rootCmd.Use != "pomodomate" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "pomodomate")
	}

	for _, name := range []string{"run", "status", "settings", "reset", "mcp"} {
		t.Run(name, func(t *testing.T) {
			found, _, err := rootCmd.Find([]string{name})
			if err != nil || found.Name() != name {
				t.Errorf("subcommand %q not registered", name)
			}
		})
	}
}

func TestRootCmd_Help(t *testing.T) {
	setupCmdTest(t)
	stdout, _, err := executeCmd(rootCmd, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Pomodoro")
}

// TestRootCmd_Flags tests that global flags are registered
func TestRootCmd_Flags(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("db") == nil {
		t.Error("--db flag should be registered")
	}
	if rootCmd.PersistentFlags().Lookup("json") == nil {
		t.Error("--json flag should be registered")
	}
}

func TestStatusCmd_FreshInstall(t *testing.T) {
	db := setupCmdTest(t)

	stdout, _, err := executeCmd(rootCmd, "status", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Coins: 0")
	assert.Contains(t, stdout, "25:00")
}

func TestStatusCmd_JSON(t *testing.T) {
	db := setupCmdTest(t)

	stdout, _, err := executeCmd(rootCmd, "status", "--json", "--db", db)
	require.NoError(t, err)

	var status domain.Status
	require.NoError(t, json.Unmarshal([]byte(stdout), &status))
	assert.Equal(t, domain.ModeWork, status.Mode)
	assert.Equal(t, "25:00", status.Clock)
	assert.Equal(t, 1500, status.RemainingSeconds)
	assert.False(t, status.Running)
	assert.Equal(t, domain.DefaultSettings(), status.Settings)
	assert.Zero(t, status.Coins)
	assert.Nil(t, status.Celebration)
}

func TestSettingsSetCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.Settings
	}{
		{
			name: "valid values",
			args: []string{"--work", "50", "--short", "10", "--long", "20"},
			want: domain.Settings{Work: 50, ShortBreak: 10, LongBreak: 20},
		},
		{
			name: "out of range and junk become one",
			args: []string{"--work", "61", "--short", "abc", "--long", "0"},
			want: domain.Settings{Work: 1, ShortBreak: 1, LongBreak: 1},
		},
		{
			name: "omitted flags keep current values",
			args: []string{"--short", "7"},
			want: domain.Settings{Work: 25, ShortBreak: 7, LongBreak: 15},
		},
		{
			name: "leading integer is used",
			args: []string{"--work", "30min"},
			want: domain.Settings{Work: 30, ShortBreak: 5, LongBreak: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupCmdTest(t)

			args := append([]string{"settings", "set", "--json", "--db", db}, tt.args...)
			stdout, _, err := executeCmd(rootCmd, args...)
			require.NoError(t, err)

			var saved domain.Settings
			require.NoError(t, json.Unmarshal([]byte(stdout), &saved))
			assert.Equal(t, tt.want, saved)

			setupCmdTest(t)
			stdout, _, err = executeCmd(rootCmd, "settings", "--json", "--db", db)
			require.NoError(t, err)

			var reloaded domain.Settings
			require.NoError(t, json.Unmarshal([]byte(stdout), &reloaded))
			assert.Equal(t, tt.want, reloaded, "settings should persist across invocations")
		})
	}
}

func TestSettingsCmd_Text(t *testing.T) {
	db := setupCmdTest(t)

	stdout, _, err := executeCmd(rootCmd, "settings", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Pomodoro:")
	assert.Contains(t, stdout, "(1-30)")
}

func TestResetCmd_Force(t *testing.T) {
	db := setupCmdTest(t)

	_, _, err := executeCmd(rootCmd, "settings", "set", "--work", "40", "--db", db)
	require.NoError(t, err)

	setupCmdTest(t)
	stdout, _, err := executeCmd(rootCmd, "reset", "--force", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Progress deleted")

	setupCmdTest(t)
	stdout, _, err = executeCmd(rootCmd, "settings", "--json", "--db", db)
	require.NoError(t, err)
	var settings domain.Settings
	require.NoError(t, json.Unmarshal([]byte(stdout), &settings))
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestResetCmd_RefusesWithoutTerminal(t *testing.T) {
	db := setupCmdTest(t)

	_, _, err := executeCmd(rootCmd, "reset", "--db", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
}

func TestRunCmd_InvalidMode(t *testing.T) {
	db := setupCmdTest(t)

	_, _, err := executeCmd(rootCmd, "run", "zzzz", "--db", db)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidMode)
}

func TestRunCmd_TooManyArgs(t *testing.T) {
	db := setupCmdTest(t)

	_, _, err := executeCmd(rootCmd, "run", "work", "short", "--db", db)
	assert.Error(t, err)
}

func TestRunInterval_AbortRecordsNothing(t *testing.T) {
	dbPath = setupCmdTest(t)
	require.NoError(t, initializeServices())
	t.Cleanup(func() { _ = cleanupServices() })

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	require.NoError(t, runInterval(ctx, &out, domain.ModeWork, false))
	assert.Contains(t, out.String(), "Pomodoro started: 25:00")
	assert.Contains(t, out.String(), "Aborted")

	rewards := app.stateStore().LoadRewards(context.Background())
	assert.Zero(t, rewards.Coins)
}

func TestReportCompletion(t *testing.T) {
	setupCmdTest(t)

	state := domain.CurrentState{
		Mode:               domain.ModeWork,
		TotalSeconds:       60,
		Rewards:            domain.RewardLedger{Coins: 3, StreakDays: 2, LastCompletionDate: "2026-03-10"},
		MotivationalPhrase: "Keep going!",
		Celebration:        domain.Celebration{Visible: true, Phrase: "Great job!", CoinAwarded: true},
	}

	var out bytes.Buffer
	require.NoError(t, reportCompletion(&out, state, false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Pomodoro complete! Great job!")
	assert.Contains(t, lines[1], "+1 coin · 3 coins · 2-day streak")
	assert.Contains(t, lines[2], "Domate says: Keep going!")
}
