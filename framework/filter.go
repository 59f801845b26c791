package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

// And returns a filter that accepts a test only if every non-nil filter accepts it.
func And(filters ...Filter) Filter {
	return func(id TestID) bool {
		for _, f := range filters {
			if f != nil && !f(id) {
				return false
			}
		}
		return true
	}
}

type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter(id TestID) bool {
	name := id.String()
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(name)) &&
		!r.MustNotMatch.AnyMatch(name)
}

type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

// Type is called by the command line parser to describe the flag's value.
func (r *RegexList) Type() string {
	return "regex"
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// PatternFilter selects tests by full name ("Suite.Name") with a list of wildcard patterns, in
// the form "Positive1:Positive2-Negative1:Negative2". A "*" matches any string and a "?" matches
// any single character. An empty positive list matches every test.
type PatternFilter struct {
	source   string
	positive []*regexp.Regexp
	negative []*regexp.Regexp
}

// ParsePatternFilter parses a filter expression such as "Test.*:ExactSuite.ExactTest" or
// "*-Flaky.*".
func ParsePatternFilter(expr string) PatternFilter {
	f := PatternFilter{source: expr}
	pos, neg := expr, ""
	if i := strings.Index(expr, "-"); i >= 0 {
		pos, neg = expr[:i], expr[i+1:]
	}
	f.positive = compilePatterns(pos)
	f.negative = compilePatterns(neg)
	return f
}

func compilePatterns(list string) []*regexp.Regexp {
	var ret []*regexp.Regexp
	for _, p := range strings.Split(list, ":") {
		if p == "" {
			continue
		}
		var b strings.Builder
		b.WriteString("^")
		for _, ch := range p {
			switch ch {
			case '*':
				b.WriteString(".*")
			case '?':
				b.WriteString(".")
			default:
				b.WriteString(regexp.QuoteMeta(string(ch)))
			}
		}
		b.WriteString("$")
		ret = append(ret, regexp.MustCompile(b.String()))
	}
	return ret
}

func (f PatternFilter) String() string {
	return f.source
}

func (f PatternFilter) IsDefined() bool {
	return len(f.positive) != 0 || len(f.negative) != 0
}

func (f PatternFilter) AsFilter(id TestID) bool {
	name := id.String()
	if len(f.positive) != 0 && !anyRegexMatch(f.positive, name) {
		return false
	}
	return !anyRegexMatch(f.negative, name)
}

func anyRegexMatch(patterns []*regexp.Regexp, s string) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

func PrintFilterDescription(out io.Writer, pattern PatternFilter, filters RegexFilters) {
	if !pattern.IsDefined() && !filters.MustMatch.IsDefined() && !filters.MustNotMatch.IsDefined() {
		return
	}
	fmt.Fprintln(out, "Some tests will be skipped based on the filter criteria for this test run:")
	if pattern.IsDefined() {
		fmt.Fprintf(out, "  skip any not selected by \"%s\"\n", pattern)
	}
	if filters.MustMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any matching %s\n", filters.MustNotMatch)
	}
	fmt.Fprintln(out)
}
