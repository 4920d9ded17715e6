package commands

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnf-go/tdnf-util/internal/ui"
	uitesting "github.com/tdnf-go/tdnf-util/internal/ui/testing"
	"github.com/tdnf-go/tdnf-util/pkg/errcode"
)

// TestRootCommand_FlagConfiguration tests that flags are properly configured on root command
func TestRootCommand_FlagConfiguration(t *testing.T) {
	rootCmd := NewRootCmd()

	for _, name := range []string{"no-color", "verbose"} {
		flag := rootCmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, "%s flag should be defined", name)
		assert.Equal(t, "false", flag.DefValue, "%s should default to false", name)
	}

	for _, name := range []string{"log-file", "installroot"} {
		flag := rootCmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, "%s flag should be defined", name)
		assert.Empty(t, flag.DefValue, "%s should default to empty", name)
	}
}

// TestRootCommand_FlagInheritance tests that child commands inherit persistent flags
func TestRootCommand_FlagInheritance(t *testing.T) {
	rootCmd := NewRootCmd()

	mkdirCmd, _, err := rootCmd.Find([]string{"mkdir"})
	require.NoError(t, err, "mkdir command should exist")

	inheritedFlags := mkdirCmd.InheritedFlags()
	assert.NotNil(t, inheritedFlags.Lookup("no-color"), "mkdir command should inherit no-color flag")
	assert.NotNil(t, inheritedFlags.Lookup("verbose"), "mkdir command should inherit verbose flag")
	assert.NotNil(t, inheritedFlags.Lookup("installroot"), "mkdir command should inherit installroot flag")
}

func TestRootCommand_Subcommands(t *testing.T) {
	rootCmd := NewRootCmd()

	for _, name := range []string{"size", "strerror", "errors", "isglob", "match", "glob", "mkdir", "isdir", "du", "version", "config"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestSizeCommand(t *testing.T) {
	uitesting.NewCommandHarness(t, NewRootCmd).
		Step(uitesting.CommandStep{
			Name: "formats_each_argument",
			Args: []string{"size",
				"0", "1", "1023", "1024", "1536", "1048576", "52428800", "1073741824", "1099511627776"},
			Golden: "size",
		}).
		Step(uitesting.CommandStep{
			Name:    "rejects_non_numeric",
			Args:    []string{"size", "12", "lots"},
			ErrorIs: errcode.ErrInvalidParameter,
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				assert.Empty(t, stdout, "nothing is printed when any argument is invalid")
			},
		}).
		Step(uitesting.CommandStep{
			Name:    "rejects_negative",
			Args:    []string{"size", "--", "-1"},
			ErrorIs: errcode.ErrInvalidParameter,
		}).
		Run(t)
}

func TestStrerrorCommand(t *testing.T) {
	uitesting.NewCommandHarness(t, NewRootCmd).
		Step(uitesting.CommandStep{
			Name:   "describes_codes",
			Args:   []string{"strerror", "1001", "1006", "1050", "1602", "1613", "1622"},
			Golden: "strerror",
		}).
		Step(uitesting.CommandStep{
			Name: "raw_errno",
			Args: []string{"strerror", "--errno", "2"},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				assert.Equal(t, "1602 ENOENT: No such file or directory\n", stdout)
			},
		}).
		Step(uitesting.CommandStep{
			Name:    "rejects_non_numeric",
			Args:    []string{"strerror", "ENOENT"},
			ErrorIs: errcode.ErrInvalidParameter,
		}).
		Run(t)
}

func TestStrerrorCommand_CustomTable(t *testing.T) {
	tablePath := filepath.Join(t.TempDir(), "errors.toml")
	require.NoError(t, os.WriteFile(tablePath, []byte(`
[[error]]
code = 1006
name = "ERROR_TDNF_NO_MATCH"
description = "Nothing provides the requested package"
`), 0o600))

	uitesting.NewCommandHarness(t, NewRootCmd).
		Step(uitesting.CommandStep{
			Name: "set_error_table",
			Args: []string{"config", "set", "error-table", tablePath},
		}).
		Step(uitesting.CommandStep{
			Name:   "configured_entries_take_precedence",
			Args:   []string{"strerror", "1006", "1001"},
			Golden: "strerror_custom_table",
		}).
		Step(uitesting.CommandStep{
			Name: "errors_lists_shadowed_with_all",
			Args: []string{"errors", "--all"},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				assert.Contains(t, stdout, "1006 ERROR_TDNF_NO_MATCH: Nothing provides the requested package\n")
				assert.Contains(t, stdout, "1006 ERROR_TDNF_NO_MATCH: No matching packages (shadowed)\n")
			},
		}).
		Run(t)
}

func TestRootCommand_BrokenErrorTableFallsBack(t *testing.T) {
	h := uitesting.NewCommandHarness(t, NewRootCmd)
	require.NoError(t, os.WriteFile(h.ConfigPath(), []byte("errortable: /nonexistent/errors.toml\n"), 0o600))

	h.Step(uitesting.CommandStep{
		Name: "uses_builtin_table",
		Args: []string{"strerror", "1006"},
		OutputAssert: func(t *testing.T, stdout, stderr string) {
			assert.Equal(t, "1006 ERROR_TDNF_NO_MATCH: No matching packages\n", stdout)
			assert.Contains(t, stderr, "Warning: using built-in error descriptions")
		},
	}).Run(t)
}

func TestErrorsCommand(t *testing.T) {
	uitesting.NewCommandHarness(t, NewRootCmd).
		Step(uitesting.CommandStep{
			Name: "lists_builtin_table",
			Args: []string{"errors"},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				assert.Contains(t, stdout, "1000 ERROR_TDNF_BASE: Generic base error\n")
				assert.Contains(t, stdout, "1622 ERROR_TDNF_INVALID_PARAMETER: Invalid argument\n")
				assert.NotContains(t, stdout, "(shadowed)")
			},
		}).
		Run(t)
}

func TestGlobCommands(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"photon.repo", "photon-updates.repo", "README"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	uitesting.NewCommandHarness(t, NewRootCmd).
		Step(uitesting.CommandStep{
			Name:   "isglob",
			Args:   []string{"isglob", "kernel*", "bash", "lib?", "[ab]c", "x86_64"},
			Golden: "isglob",
		}).
		Step(uitesting.CommandStep{
			Name:   "match",
			Args:   []string{"match", "python3-*", "python3-pip", "bash", "python3-libs"},
			Golden: "match",
		}).
		Step(uitesting.CommandStep{
			Name: "match_literal_is_exact",
			Args: []string{"match", "bash", "bash-completion", "bash"},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				assert.Equal(t, "bash\n", stdout)
			},
		}).
		Step(uitesting.CommandStep{
			Name:    "match_nothing",
			Args:    []string{"match", "zsh*", "bash"},
			ErrorIs: errcode.ErrNoMatch,
			ErrAssert: func(t *testing.T, err error) {
				assert.Equal(t, "✗ Error: match zsh*: No matching packages (1006)\n", ui.FormatError(err))
			},
		}).
		Step(uitesting.CommandStep{
			Name:    "match_bad_pattern",
			Args:    []string{"match", "[abc", "a"},
			ErrorIs: errcode.ErrInvalidParameter,
		}).
		Step(uitesting.CommandStep{
			Name: "glob",
			Args: []string{"glob", filepath.Join(dir, "*.repo")},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				assert.Equal(t,
					filepath.Join(dir, "photon-updates.repo")+"\n"+filepath.Join(dir, "photon.repo")+"\n",
					stdout)
			},
		}).
		Step(uitesting.CommandStep{
			Name:    "glob_nothing",
			Args:    []string{"glob", filepath.Join(dir, "*.conf")},
			ErrorIs: errcode.ErrNoMatch,
		}).
		Run(t)
}

func TestMkdirCommand(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "var", "cache", "tdnf")
	single := filepath.Join(dir, "single")
	private := filepath.Join(dir, "private")
	installRoot := t.TempDir()

	uitesting.NewCommandHarness(t, NewRootCmd).
		Step(uitesting.CommandStep{
			Name: "single_directory",
			Args: []string{"mkdir", single},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				assert.Equal(t, "✓ Directory ready: "+single+"\n", stdout)
				assert.DirExists(t, single)
			},
		}).
		Step(uitesting.CommandStep{
			Name: "single_directory_existing_is_ok",
			Args: []string{"mkdir", single},
		}).
		Step(uitesting.CommandStep{
			Name:    "single_directory_missing_parent",
			Args:    []string{"mkdir", filepath.Join(dir, "missing", "child")},
			ErrorIs: errcode.ErrNotFound,
		}).
		Step(uitesting.CommandStep{
			Name: "parents",
			Args: []string{"mkdir", "-p", nested},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				assert.DirExists(t, nested)
			},
		}).
		Step(uitesting.CommandStep{
			Name:    "parents_existing",
			Args:    []string{"mkdir", "-p", nested},
			ErrorIs: errcode.ErrAlreadyExists,
			ErrAssert: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, fs.ErrExist)
			},
		}).
		Step(uitesting.CommandStep{
			Name: "parents_exist_ok",
			Args: []string{"mkdir", "-p", "--exist-ok", nested},
		}).
		Step(uitesting.CommandStep{
			Name: "mode_flag",
			Args: []string{"mkdir", "--mode", "0700", private},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				info, err := os.Stat(private)
				require.NoError(t, err)
				assert.Equal(t, fs.FileMode(0o700), info.Mode().Perm())
			},
		}).
		Step(uitesting.CommandStep{
			Name:    "bad_mode_flag",
			Args:    []string{"mkdir", "--mode", "0999", filepath.Join(dir, "never")},
			ErrorIs: errcode.ErrInvalidParameter,
		}).
		Step(uitesting.CommandStep{
			Name: "installroot",
			Args: []string{"mkdir", "-p", "--installroot", installRoot, "/var/lib/tdnf"},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				assert.DirExists(t, filepath.Join(installRoot, "var", "lib", "tdnf"))
			},
		}).
		Run(t)
}

func TestMkdirCommand_ConfiguredMode(t *testing.T) {
	target := filepath.Join(t.TempDir(), "restricted")

	uitesting.NewCommandHarness(t, NewRootCmd).
		Step(uitesting.CommandStep{
			Name: "set_dir_mode",
			Args: []string{"config", "set", "dir-mode", "0750"},
		}).
		Step(uitesting.CommandStep{
			Name: "mkdir_uses_configured_mode",
			Args: []string{"mkdir", target},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				info, err := os.Stat(target)
				require.NoError(t, err)
				assert.Equal(t, fs.FileMode(0o750), info.Mode().Perm())
			},
		}).
		Run(t)
}

func TestIsDirCommand(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tdnf.conf")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	uitesting.NewCommandHarness(t, NewRootCmd).
		Step(uitesting.CommandStep{
			Name: "directory",
			Args: []string{"isdir", dir},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				assert.Equal(t, "true\n", stdout)
			},
		}).
		Step(uitesting.CommandStep{
			Name: "regular_file",
			Args: []string{"isdir", file},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				assert.Equal(t, "false\n", stdout)
			},
		}).
		Step(uitesting.CommandStep{
			Name:    "missing",
			Args:    []string{"isdir", filepath.Join(dir, "missing")},
			ErrorIs: errcode.ErrNotFound,
		}).
		Step(uitesting.CommandStep{
			Name: "installroot",
			Args: []string{"isdir", "--installroot", dir, "/"},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				assert.Equal(t, "true\n", stdout)
			},
		}).
		Run(t)
}

func TestDuCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "repodata"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "rpms"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "repodata", "repomd.xml"), make([]byte, 2048), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rpms", "bash.rpm"), make([]byte, 1536), 0o600))

	uitesting.NewCommandHarness(t, NewRootCmd).
		Step(uitesting.CommandStep{
			Name:   "lists_files_and_total",
			Args:   []string{"du", dir},
			Golden: "du",
		}).
		Step(uitesting.CommandStep{
			Name: "summarize_with_exclude",
			Args: []string{"du", "-s", "--exclude", "*.rpm", dir},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				assert.Equal(t, "      2.00 k  total\n", stdout)
			},
		}).
		Step(uitesting.CommandStep{
			Name:    "missing_directory",
			Args:    []string{"du", filepath.Join(dir, "missing")},
			ErrorIs: errcode.ErrNotFound,
		}).
		Run(t)
}

func TestVersionCommand(t *testing.T) {
	uitesting.NewCommandHarness(t, NewRootCmd).
		Step(uitesting.CommandStep{
			Name: "prints_version",
			Args: []string{"version"},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				assert.Contains(t, stdout, "tdnf-util dev")
			},
		}).
		Run(t)
}

func TestRootCommand_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "tdnf-util.log")

	uitesting.NewCommandHarness(t, NewRootCmd).
		Step(uitesting.CommandStep{
			Name: "debug_logs_written_to_file",
			Args: []string{"--log-file", logPath, "config", "set", "log-level", "debug"},
		}).
		Step(uitesting.CommandStep{
			Name: "second_run_logs_at_debug",
			Args: []string{"--log-file", logPath, "isglob", "a*"},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				content, err := os.ReadFile(logPath)
				require.NoError(t, err)
				assert.Contains(t, string(content), "Config loaded successfully")
			},
		}).
		Run(t)
}

func TestConfigCommands(t *testing.T) {
	uitesting.NewCommandHarness(t, NewRootCmd).
		Step(uitesting.CommandStep{
			Name: "set_log_level",
			Args: []string{"config", "set", "log-level", "DEBUG"},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				assert.Equal(t, "✓ Set log-level = DEBUG\n", stdout)
			},
		}).
		Step(uitesting.CommandStep{
			Name: "get_log_level_is_normalized",
			Args: []string{"config", "get", "log-level"},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				assert.Equal(t, "debug\n", stdout)
			},
		}).
		Step(uitesting.CommandStep{
			Name: "set_dir_mode",
			Args: []string{"config", "set", "dir-mode", "0700"},
		}).
		Step(uitesting.CommandStep{
			Name: "list",
			Args: []string{"config", "list"},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				assert.Equal(t, "log-level: debug\ndir-mode: 0700\n", stdout)
			},
		}).
		Step(uitesting.CommandStep{
			Name:    "get_unset_key",
			Args:    []string{"config", "get", "error-table"},
			ErrorIs: errcode.ErrNotFound,
		}).
		Step(uitesting.CommandStep{
			Name:    "set_invalid_dir_mode",
			Args:    []string{"config", "set", "dir-mode", "rwx"},
			ErrorIs: errcode.ErrInvalidParameter,
		}).
		Step(uitesting.CommandStep{
			Name:    "set_unknown_key",
			Args:    []string{"config", "set", "color", "always"},
			ErrorIs: errcode.ErrInvalidParameter,
			ErrAssert: func(t *testing.T, err error) {
				assert.Empty(t, ui.FormatError(err), "message was already printed")
			},
			OutputAssert: func(t *testing.T, stdout, stderr string) {
				assert.Contains(t, stderr, "Valid configuration keys:")
				assert.Contains(t, stderr, "  dir-mode - ")
			},
		}).
		Step(uitesting.CommandStep{
			Name:    "get_unknown_key",
			Args:    []string{"config", "get", "color"},
			ErrorIs: errcode.ErrInvalidParameter,
		}).
		Run(t)
}
