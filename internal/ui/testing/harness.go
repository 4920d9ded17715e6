package testing

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnf-go/tdnf-util/pkg/config"
	"github.com/tdnf-go/tdnf-util/pkg/errcode"
)

// CommandHarness provides a step-based testing framework for cobra commands.
// It allows you to:
// - Run a fresh command tree with a sequence of argument lists
// - Assert stdout using golden files or custom assertions
// - Assert the returned error
//
// Steps share one isolated config file, so a "config set" step is visible to
// the steps after it.
//
// Example usage:
//
//	harness := NewCommandHarness(t, commands.NewRootCmd)
//	harness.
//		Step(CommandStep{
//			Name:   "size",
//			Args:   []string{"size", "0", "1024"},
//			Golden: "size",
//		}).
//		Step(CommandStep{
//			Name:    "bad_size",
//			Args:    []string{"size", "abc"},
//			ErrorIs: errcode.ErrInvalidParameter,
//		}).
//		Run(t)
type CommandHarness struct {
	newCmd     func() *cobra.Command
	steps      []CommandStep
	goldie     *goldie.Goldie
	configPath string
}

// CommandStep represents one command invocation.
type CommandStep struct {
	// Name identifies this step (used as the subtest name)
	Name string

	// Args passed to the root command
	Args []string

	// Golden is the golden file name for stdout.
	// If set, stdout will be compared against testdata/<Golden>.golden
	// Use -update flag to regenerate golden files: go test -update
	Golden string

	// WantErr expects the command to fail. Implied by ErrorIs and ErrAssert.
	WantErr bool

	// ErrorIs is matched against the returned error with errors.Is.
	ErrorIs error

	// ErrAssert is a custom assertion for the returned error.
	ErrAssert func(t *testing.T, err error)

	// OutputAssert is a custom assertion for stdout and stderr.
	OutputAssert func(t *testing.T, stdout, stderr string)
}

// NewCommandHarness creates a new test harness around a root command constructor.
//
// IMPORTANT: This function sets up a consistent testing environment:
// - Forces ASCII color profile (prevents color inconsistencies across environments)
// - Points the config file at a temp directory and resets viper
// - Restores the built-in error table when the test ends
func NewCommandHarness(t *testing.T, newCmd func() *cobra.Command) *CommandHarness {
	t.Helper()

	// Force ASCII color profile for consistent golden files across environments
	lipgloss.SetColorProfile(termenv.Ascii)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(config.ConfigPathEnv, configPath)

	viper.Reset()
	t.Cleanup(func() {
		viper.Reset()
		errcode.SetDefault(nil)
	})

	return &CommandHarness{
		newCmd:     newCmd,
		configPath: configPath,
		goldie: goldie.New(t,
			goldie.WithFixtureDir("testdata"),
			goldie.WithNameSuffix(".golden"),
		),
	}
}

// ConfigPath returns the config file the commands read and write.
func (h *CommandHarness) ConfigPath() string {
	return h.configPath
}

// Step adds a test step to the harness.
// Steps are executed in the order they are added.
// Returns the harness for method chaining.
func (h *CommandHarness) Step(step CommandStep) *CommandHarness {
	h.steps = append(h.steps, step)
	return h
}

// Run executes every step as a subtest. A failing step does not stop the
// steps after it.
func (h *CommandHarness) Run(t *testing.T) {
	t.Helper()

	for _, step := range h.steps {
		t.Run(step.Name, func(t *testing.T) {
			stdout, stderr, err := h.Execute(step.Args...)

			wantErr := step.WantErr || step.ErrorIs != nil || step.ErrAssert != nil
			if wantErr {
				require.Error(t, err, "stdout: %s\nstderr: %s", stdout, stderr)
			} else {
				require.NoError(t, err, "stderr: %s", stderr)
			}

			if step.ErrorIs != nil {
				assert.ErrorIs(t, err, step.ErrorIs)
			}
			if step.ErrAssert != nil {
				step.ErrAssert(t, err)
			}

			if step.Golden != "" {
				h.goldie.Assert(t, step.Golden, []byte(stdout))
			}
			if step.OutputAssert != nil {
				step.OutputAssert(t, stdout, stderr)
			}
		})
	}
}

// Execute runs a fresh command tree once and returns what it wrote.
func (h *CommandHarness) Execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	cmd := h.newCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
