package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
		kind declKind
	}{
		{"paren function", "greet() {", "greet()", declCallable},
		{"indented paren function", "  cleanup ()", "cleanup()", declCallable},
		{"namespaced function", "str:join() {", "str:join()", declCallable},
		{"function keyword", "function do_thing {", "do_thing()", declCallable},
		{"function keyword with parens", "function do_thing() {", "do_thing()", declCallable},
		{"export with value", "export PATH=/usr/local/bin", "PATH", declVariable},
		{"export without value", "export EDITOR", "EDITOR", declVariable},
		{"plain assignment", "COUNT=0", "COUNT", declVariable},
		{"declare with flag", "declare -r MAX=10", "MAX", declVariable},
		{"typeset with flag", "typeset -i COUNT=0", "COUNT", declVariable},
		{"declare with several flags", "declare -a -x LIST=one", "LIST", declVariable},
		{"readonly keeps assignment", "readonly VERSION=1.2.3", "const VERSION=1.2.3", declVariable},
		{"parameter default", ": ${CACHE_DIR:=/tmp/cache}", "CACHE_DIR", declVariable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl, ok := classifyLine(tt.line)
			require.True(t, ok, "expected %q to classify", tt.line)
			assert.Equal(t, tt.want, decl.name)
			assert.Equal(t, tt.kind, decl.kind)
		})
	}
}

func TestClassifyLineRejects(t *testing.T) {
	lines := []string{
		"",
		"echo hello",
		"}",
		"#!/bin/sh",
		"if [ -z \"$1\" ]; then",
		"1BAD=2",
		"local count=1",
		"case $1 in",
		"  printf '%s' \"$out\"",
	}
	for _, line := range lines {
		_, ok := classifyLine(line)
		assert.False(t, ok, "expected %q not to classify", line)
	}
}

// A line with both the function keyword and parens must classify once, via
// the first matching rule.
func TestClassifyLineFirstMatchWins(t *testing.T) {
	decl, ok := classifyLine("function wrapped() {")
	require.True(t, ok)
	assert.Equal(t, "wrapped()", decl.name)
}

func TestClassifyLineDeterministic(t *testing.T) {
	first, ok1 := classifyLine("readonly VERSION=1.2.3")
	second, ok2 := classifyLine("readonly VERSION=1.2.3")
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
}
