package lox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockReporter struct {
	errors        []error
	hadErr        bool
	hadRuntimeErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false, false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	if _, isRuntimeErr := err.(*RuntimeError); isRuntimeErr {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *mockReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}

func tokEOF(line int) *Token {
	return NewToken(EOF, "", nil, line)
}

func TestRun(t *testing.T) {
	testCases := []struct {
		src  string
		eval string
	}{
		// precedence and grouping
		{"2 + 3 * 4", "14"},
		{"(2 + 3) * 4", "20"},
		// left-associativity
		{"10 - 2 - 3", "5"},
		// right-associative unary
		{"--3", "3"},
		{"!!true", "true"},
		// truthiness
		{"!0", "false"},
		{"!nil", "true"},
		{"!\"\"", "false"},
		// equality never coerces across kinds
		{"1 == \"1\"", "false"},
		{"nil == nil", "true"},
		{"nil == false", "false"},
		{"1 != 2", "true"},
		// concatenation
		{"\"a\" + \"b\"", "ab"},
		// comma yields its right operand
		{"1, 2", "2"},
		{"1, 2, 3", "3"},
		// ternary, 0 is truthy
		{"true ? 1 : 2", "1"},
		{"0 ? 1 : 2", "1"},
		{"nil ? 1 : 2", "2"},
		{"1 < 2 ? \"yes\" : \"no\"", "yes"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		report := newMockReporter()
		var out strings.Builder
		Run(tc.src, &out, report)

		assert.False(report.HadError(), tc.src)
		assert.False(report.HadRuntimeError(), tc.src)
		assert.Equal(tc.eval, strings.TrimSpace(out.String()), tc.src)
	}
}

func TestRunWithErrors(t *testing.T) {
	testCases := []struct {
		src          string
		isRuntimeErr bool
	}{
		{"1 + true", true},
		{"\"a\" - \"b\"", true},
		{"1 < \"2\"", true},
		{"1 / 0", true},
		{"-\"a\"", true},
		{"1 2", false},
		{"(1 + 2", false},
		{"+1", false},
		{"true ? 1", false},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		report := newMockReporter()
		var out strings.Builder
		Run(tc.src, &out, report)

		assert.Empty(out.String(), tc.src)
		if tc.isRuntimeErr {
			assert.True(report.HadRuntimeError(), tc.src)
		} else {
			assert.True(report.HadError(), tc.src)
		}
	}
}

// Evaluating the same source twice must be idempotent, there is no hidden
// state in the pipeline.
func TestRunIdempotence(t *testing.T) {
	assert := assert.New(t)

	report := newMockReporter()
	var first strings.Builder
	Run("(2 + 3) * 4", &first, report)
	var second strings.Builder
	Run("(2 + 3) * 4", &second, report)

	assert.False(report.HadError())
	assert.False(report.HadRuntimeError())
	assert.Equal(first.String(), second.String())
}
