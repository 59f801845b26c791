package framework

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func TestWriteJSONReport(t *testing.T) {
	failed := TestResult{
		TestID:   TestID{"Suite", "Bad"},
		File:     "bad.go",
		Line:     7,
		Failures: []Failure{{File: "bad.go", Line: UnknownLine, Message: "Test returned error: disk full"}},
	}
	results := Results{
		Tests: []TestResult{
			{TestID: TestID{"Suite", "Good"}, File: "good.go", Line: 3},
			failed,
			{TestID: TestID{"Suite", "Later"}, Skipped: true, SkipReason: "later", Line: UnknownLine},
		},
		Failures: []TestResult{failed},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSONReport(&buf, results))

	var doc ldvalue.Value
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 3, doc.GetByKey("tests").IntValue())
	assert.Equal(t, 1, doc.GetByKey("passed").IntValue())
	assert.Equal(t, 1, doc.GetByKey("failed").IntValue())
	assert.Equal(t, 1, doc.GetByKey("skipped").IntValue())

	entries := doc.GetByKey("results")
	require.Equal(t, 3, entries.Count())
	assert.Equal(t, "passed", entries.GetByIndex(0).GetByKey("status").StringValue())
	assert.Equal(t, 3, entries.GetByIndex(0).GetByKey("line").IntValue())

	bad := entries.GetByIndex(1)
	assert.Equal(t, "failed", bad.GetByKey("status").StringValue())
	failure := bad.GetByKey("failures").GetByIndex(0)
	assert.Equal(t, "bad.go", failure.GetByKey("file").StringValue())
	assert.True(t, failure.GetByKey("line").IsNull())
	assert.Equal(t, "Test returned error: disk full", failure.GetByKey("message").StringValue())

	later := entries.GetByIndex(2)
	assert.Equal(t, "skipped", later.GetByKey("status").StringValue())
	assert.Equal(t, "later", later.GetByKey("skipReason").StringValue())
	assert.True(t, later.GetByKey("line").IsNull())
}
