// Package runner provides the command-line interface of a test binary whose tests are
// registered in a framework.Registry.
//
// A test binary imports the packages that declare its tests, for their side effects, and calls
// Main:
//
//	import _ "example.com/project/mytests"
//
//	func main() {
//		runner.Main(runner.Options{Use: "mytests"})
//	}
package runner

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/launchdarkly/test-interop/framework"
	"github.com/launchdarkly/test-interop/interop"
)

var errTestsFailed = errors.New("tests failed")

// Options configures the command.
type Options struct {
	// Use is the command name shown in help output.
	Use string
	// DefaultFilter is the default value of the --filter flag. Empty selects every test.
	DefaultFilter string
	// ExpectedPassCount is the default value of the --expect-passed flag.
	ExpectedPassCount int
	// Registry defaults to framework.Default.
	Registry *framework.Registry
}

// Main runs the command with the process arguments and exits with status 1 on failure.
func Main(opts Options) {
	if err := NewCommand(opts).Execute(); err != nil {
		if !errors.Is(err, errTestsFailed) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

// NewCommand returns the root command. Running it without a subcommand is the same as "run".
func NewCommand(opts Options) *cobra.Command {
	if opts.Registry == nil {
		opts.Registry = framework.Default
	}
	if opts.Use == "" {
		opts.Use = "interop-runner"
	}

	var runParams, listParams commandParams
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the registered tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(cmd, &runParams, opts)
		},
	}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered tests without running them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listTests(cmd, &listParams, opts)
			return nil
		},
	}
	rootCmd := &cobra.Command{
		Use:           opts.Use,
		Short:         "Run tests declared through the interop package",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCmd.RunE,
	}

	// The env file has to be loaded before flag defaults are computed from the environment.
	if err := loadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading .env file: %s\n", err)
	}
	runParams.addRunFlags(runCmd.Flags(), opts)
	runParams.addRunFlags(rootCmd.Flags(), opts)
	listParams.addListFlags(listCmd.Flags(), opts)

	rootCmd.AddCommand(runCmd, listCmd)
	return rootCmd
}

func runTests(cmd *cobra.Command, params *commandParams, opts Options) error {
	out := cmd.OutOrStdout()
	color.NoColor = params.noColor || !isTerminal(out)

	if len(params.sourceRoots) > 0 {
		interop.AddSourceRoots(params.sourceRoots...)
	}
	if params.debugAll {
		opts.Registry.SetDebugLogger(log.New(out, "", log.LstdFlags))
	}

	framework.PrintFilterDescription(out, framework.ParsePatternFilter(params.filter), params.regexFilters)

	testLogger := framework.ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
		Output:               out,
	}
	results := opts.Registry.RunAllTests(params.asFilter(), testLogger)

	fmt.Fprintln(out)
	framework.PrintResults(out, results)

	if params.jsonOutput != "" {
		if err := writeJSONReport(params.jsonOutput, results); err != nil {
			return fmt.Errorf("writing JSON report: %w", err)
		}
	}

	ok := results.OK()
	if expected := params.passCountToCheck(cmd.Flags(), opts); expected > 0 && results.PassedCount() != expected {
		fmt.Fprintf(cmd.ErrOrStderr(), "***ERROR***: Expected %d tests to pass, but saw: %d\n",
			expected, results.PassedCount())
		ok = false
	}
	if !results.OK() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "To run only the failed tests again:")
		fmt.Fprintf(out, "  %s\n", rerunCommand(os.Args[0], results))
	}
	if !ok {
		return errTestsFailed
	}
	return nil
}

func listTests(cmd *cobra.Command, params *commandParams, opts Options) {
	out := cmd.OutOrStdout()
	filter := params.asFilter()
	lastSuite := ""
	for _, t := range opts.Registry.Tests() {
		if !filter(t.ID) {
			continue
		}
		if t.ID.Suite != lastSuite {
			fmt.Fprintf(out, "%s.\n", t.ID.Suite)
			lastSuite = t.ID.Suite
		}
		fmt.Fprintf(out, "  %s\n", t.ID.Name)
	}
}

func writeJSONReport(path string, results framework.Results) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := framework.WriteJSONReport(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func isTerminal(w interface{}) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
