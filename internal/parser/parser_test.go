package parser

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeSplitsOnWhitespace(t *testing.T) {
	assert.Equal(t, []string{"ls", "-la", "/tmp"}, Tokenize("  ls   -la\t/tmp ", 1, 0))
	assert.Empty(t, Tokenize("", 1, 0))
	assert.Empty(t, Tokenize("   \t  ", 1, 0))
}

func TestTokenizeExpandsPID(t *testing.T) {
	pid := 4321
	pidStr := strconv.Itoa(pid)

	cases := []struct {
		in   string
		want string
	}{
		{"$$", pidStr},
		{"a$$b", "a" + pidStr + "b"},
		{"$$$$", pidStr + pidStr},
		{"$$$", pidStr + "$"},
		{"noexpansion", "noexpansion"},
		{"$", "$"},
	}
	for _, tc := range cases {
		got := Tokenize(tc.in, pid, 0)
		assert.Equal(t, []string{tc.want}, got, "input %q", tc.in)
	}
}

func TestTokenizeExpansionIsIdempotent(t *testing.T) {
	first := Tokenize("log$$.txt $$$$", 99, 0)
	for _, tok := range first {
		second := Tokenize(tok, 99, 0)
		assert.Equal(t, []string{tok}, second)
	}
}

func TestTokenizeCapsArgumentCount(t *testing.T) {
	line := ""
	for i := 0; i < 10; i++ {
		line += fmt.Sprintf("arg%d ", i)
	}
	assert.Len(t, Tokenize(line, 1, 4), 4)
	assert.Len(t, Tokenize(line, 1, 0), 10)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name           string
		tokens         []string
		foregroundOnly bool
		wantArgs       []string
		wantBackground bool
	}{
		{"background", []string{"sleep", "5", "&"}, false, []string{"sleep", "5"}, true},
		{"background suppressed", []string{"sleep", "5", "&"}, true, []string{"sleep", "5"}, false},
		{"foreground", []string{"ls"}, false, []string{"ls"}, false},
		{"ampersand not last", []string{"echo", "&", "hi"}, false, []string{"echo", "&", "hi"}, false},
		{"bare ampersand", []string{"&"}, false, []string{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := Classify(tc.tokens, tc.foregroundOnly)
			assert.Equal(t, tc.wantArgs, cmd.Args)
			assert.Equal(t, tc.wantBackground, cmd.Background)
		})
	}
}

func TestPlanRedirections(t *testing.T) {
	cases := []struct {
		name        string
		args        []string
		wantArgs    []string
		wantInputs  []string
		wantOutputs []string
	}{
		{"none", []string{"ls", "-l"}, []string{"ls", "-l"}, nil, nil},
		{"input", []string{"wc", "<", "in.txt"}, []string{"wc"}, []string{"in.txt"}, nil},
		{"output", []string{"ls", ">", "out.txt"}, []string{"ls"}, nil, []string{"out.txt"}},
		{"both", []string{"sort", "<", "in", ">", "out"}, []string{"sort"}, []string{"in"}, []string{"out"}},
		{"trailing tokens dropped", []string{"ls", ">", "out", "garbage"}, []string{"ls"}, nil, []string{"out"}},
		{"repeated output keeps both", []string{"ls", ">", "a", ">", "b"}, []string{"ls"}, nil, []string{"a", "b"}},
		{"missing filename", []string{"wc", "<"}, []string{"wc"}, []string{""}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := PlanRedirections(tc.args)
			assert.Equal(t, tc.wantArgs, r.Args)
			assert.Equal(t, tc.wantInputs, r.Inputs)
			assert.Equal(t, tc.wantOutputs, r.Outputs)
		})
	}
}
