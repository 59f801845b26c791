package framework

import (
	"io"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// WriteJSONReport writes the results of a test run as a single JSON document:
//
//	{"tests": 3, "passed": 2, "failed": 1, "skipped": 0,
//	 "results": [{"suite": "S", "name": "N", "file": "f.go", "line": 12,
//	              "status": "failed", "failures": [{"file": ..., "line": ..., "message": ...}]}]}
//
// A line number that is not known is written as null.
func WriteJSONReport(w io.Writer, results Results) error {
	skipped := 0
	all := ldvalue.ArrayBuild()
	for _, t := range results.Tests {
		status := "passed"
		switch {
		case t.Skipped:
			status = "skipped"
			skipped++
		case t.Failed():
			status = "failed"
		}
		failures := ldvalue.ArrayBuild()
		for _, f := range t.Failures {
			failures.Add(ldvalue.ObjectBuild().
				Set("file", ldvalue.String(f.File)).
				Set("line", optionalLine(f.Line).AsValue()).
				Set("message", ldvalue.String(f.Message)).
				Build())
		}
		entry := ldvalue.ObjectBuild().
			Set("suite", ldvalue.String(t.TestID.Suite)).
			Set("name", ldvalue.String(t.TestID.Name)).
			Set("file", ldvalue.String(t.File)).
			Set("line", optionalLine(t.Line).AsValue()).
			Set("status", ldvalue.String(status)).
			Set("failures", failures.Build())
		if t.SkipReason != "" {
			entry.Set("skipReason", ldvalue.String(t.SkipReason))
		}
		if len(t.DebugOutput) > 0 {
			debug := ldvalue.ArrayBuild()
			for _, m := range t.DebugOutput.Messages() {
				debug.Add(ldvalue.String(m))
			}
			entry.Set("debug", debug.Build())
		}
		all.Add(entry.Build())
	}

	doc := ldvalue.ObjectBuild().
		Set("tests", ldvalue.Int(len(results.Tests))).
		Set("passed", ldvalue.Int(results.PassedCount())).
		Set("failed", ldvalue.Int(len(results.Failures))).
		Set("skipped", ldvalue.Int(skipped)).
		Set("results", all.Build()).
		Build()
	_, err := io.WriteString(w, doc.JSONString()+"\n")
	return err
}

func optionalLine(line int32) ldvalue.OptionalInt {
	if line < 0 {
		return ldvalue.OptionalInt{}
	}
	return ldvalue.NewOptionalInt(int(line))
}
