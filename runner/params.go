package runner

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/launchdarkly/test-interop/framework"
)

// Environment variables that supply defaults for command-line flags. They may also be set in a
// .env file in the working directory.
const (
	FilterEnvVar     = "INTEROP_FILTER"
	JSONOutputEnvVar = "INTEROP_JSON_OUTPUT"
	DebugEnvVar      = "INTEROP_DEBUG"
)

type commandParams struct {
	filter       string
	regexFilters framework.RegexFilters
	jsonOutput   string
	expectPassed int
	sourceRoots  []string
	debug        bool
	debugAll     bool
	noColor      bool
}

// loadEnvFile reads .env from the working directory if there is one. Variables that are already
// set in the environment are not overridden.
func loadEnvFile() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (c *commandParams) addRunFlags(fs *pflag.FlagSet, opts Options) {
	defaultFilter := opts.DefaultFilter
	if v := os.Getenv(FilterEnvVar); v != "" {
		defaultFilter = v
	}
	defaultDebug, _ := strconv.ParseBool(os.Getenv(DebugEnvVar))

	fs.StringVar(&c.filter, "filter", defaultFilter,
		`tests to run, as "Positive:Patterns-Negative:Patterns" with * and ? wildcards`)
	fs.Var(&c.regexFilters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.regexFilters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.StringVar(&c.jsonOutput, "json-output", os.Getenv(JSONOutputEnvVar), "write a JSON report of the results to this file")
	fs.IntVar(&c.expectPassed, "expect-passed", opts.ExpectedPassCount,
		"fail unless exactly this many tests pass (0 to disable)")
	fs.StringSliceVar(&c.sourceRoots, "source-root", nil, "path prefix to strip from reported file names")
	fs.BoolVar(&c.debug, "debug", defaultDebug, "show debug output for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show debug output for all tests, and registry diagnostics")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")
}

func (c *commandParams) addListFlags(fs *pflag.FlagSet, opts Options) {
	defaultFilter := opts.DefaultFilter
	if v := os.Getenv(FilterEnvVar); v != "" {
		defaultFilter = v
	}
	fs.StringVar(&c.filter, "filter", defaultFilter, "tests to list, in the same form as for the run command")
}

// passCountToCheck returns the number of tests that must pass, or 0 for no check. The default
// count only applies to the default selection of tests; an explicit --expect-passed always does.
func (c *commandParams) passCountToCheck(fs *pflag.FlagSet, opts Options) int {
	if fs.Changed("expect-passed") {
		return c.expectPassed
	}
	if c.filter != opts.DefaultFilter || c.regexFilters.MustMatch.IsDefined() ||
		c.regexFilters.MustNotMatch.IsDefined() {
		return 0
	}
	return c.expectPassed
}

func (c *commandParams) asFilter() framework.Filter {
	return framework.And(framework.ParsePatternFilter(c.filter).AsFilter, c.regexFilters.AsFilter)
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand returns a command line that runs only the failed tests again.
func rerunCommand(program string, results framework.Results) string {
	var names []string
	for _, f := range results.Failures {
		names = append(names, f.TestID.String())
	}
	var b commandBuilder
	b.add(program, "run", "--filter", strings.Join(names, ":"))
	return b.String()
}
