package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"i4.energy/across/bldccli/cli"
)

func TestParameter(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		index int
		want  string
		ok    bool
	}{
		{name: "first parameter", line: "sduty 50", index: 1, want: "50", ok: true},
		{name: "collapsed delimiters", line: "sduty  \t 50  ", index: 1, want: "50", ok: true},
		{name: "second parameter", line: "cmd a b", index: 2, want: "b", ok: true},
		{name: "missing parameter", line: "sduty", index: 1, ok: false},
		{name: "trailing space only", line: "sduty   ", index: 1, ok: false},
		{name: "too few", line: "cmd a", index: 2, ok: false},
		{name: "index zero", line: "cmd a", index: 0, ok: false},
		{name: "leading whitespace", line: "  sdir cw", index: 1, want: "cw", ok: true},
		{name: "nul is a delimiter", line: "sdir\x00cw", index: 1, want: "cw", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cli.Parameter([]byte(tt.line), tt.index)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestParameterAliasesLine(t *testing.T) {
	line := []byte("sv 200")
	p, ok := cli.Parameter(line, 1)
	assert.True(t, ok)

	line[3] = '9'
	assert.Equal(t, "900", string(p))
}

func TestCommandNameAndCount(t *testing.T) {
	tests := []struct {
		line  string
		name  string
		count int
	}{
		{"on", "on", 0},
		{"  on  ", "on", 0},
		{"sduty 50", "sduty", 1},
		{"sduty 50 60", "sduty", 2},
		{"", "", 0},
		{"   ", "", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, string(cli.CommandName([]byte(tt.line))), "name of %q", tt.line)
		assert.Equal(t, tt.count, cli.ParameterCount([]byte(tt.line)), "count of %q", tt.line)
	}
}
