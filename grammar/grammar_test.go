package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minic/grammar"
)

func TestIncludeSystem(t *testing.T) {
	d, err := grammar.ParseDirective("#include <stdio.h>")
	require.NoError(t, err)
	assert.Equal(t, grammar.Include, d.Kind)
	assert.Equal(t, "stdio.h", d.Path)
	assert.True(t, d.System)
}

func TestIncludeLocal(t *testing.T) {
	d, err := grammar.ParseDirective(`#  include "lib/util.h" // helpers`)
	require.NoError(t, err)
	assert.Equal(t, grammar.Include, d.Kind)
	assert.Equal(t, "lib/util.h", d.Path)
	assert.False(t, d.System)
}

func TestIncludeWithoutPath(t *testing.T) {
	_, err := grammar.ParseDirective("#include")
	assert.ErrorIs(t, err, grammar.ErrMissingIncludePath)

	_, err = grammar.ParseDirective("#include   // nothing")
	assert.ErrorIs(t, err, grammar.ErrMissingIncludePath)
}

func TestDefine(t *testing.T) {
	tests := []struct {
		line  string
		name  string
		value string
	}{
		{"#define MAX 100", "MAX", "100"},
		{"#define DEBUG", "DEBUG", ""},
		{"#define SQUARE(x) ((x) * (x))", "SQUARE", "(x) ((x) * (x))"},
		{`#define GREETING "hi // there" // trailing`, "GREETING", `"hi // there"`},
		{"#define PI 3.14 /* approx */", "PI", "3.14"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			d, err := grammar.ParseDirective(tt.line)
			require.NoError(t, err)
			assert.Equal(t, grammar.Define, d.Kind)
			assert.Equal(t, tt.name, d.Name)
			assert.Equal(t, tt.value, d.Value)
		})
	}
}

func TestConditionalDirectives(t *testing.T) {
	d, err := grammar.ParseDirective("#ifndef CONFIG_H")
	require.NoError(t, err)
	assert.Equal(t, grammar.Ifndef, d.Kind)
	assert.Equal(t, "CONFIG_H", d.Name)

	d, err = grammar.ParseDirective("#ifdef WINDOWS")
	require.NoError(t, err)
	assert.Equal(t, grammar.Ifdef, d.Kind)

	d, err = grammar.ParseDirective("#undef MAX")
	require.NoError(t, err)
	assert.Equal(t, grammar.Undef, d.Kind)
	assert.Equal(t, "MAX", d.Name)

	d, err = grammar.ParseDirective("#else")
	require.NoError(t, err)
	assert.Equal(t, grammar.Else, d.Kind)

	d, err = grammar.ParseDirective("#endif /* CONFIG_H */")
	require.NoError(t, err)
	assert.Equal(t, grammar.Endif, d.Kind)
}

func TestMalformedDirectives(t *testing.T) {
	for _, line := range []string{
		"#pragma once",
		"#ifdef",
		"#ifdef A B",
		"#define",
		"#include stdio.h",
		"#",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := grammar.ParseDirective(line)
			require.Error(t, err)
			var se *grammar.SyntaxError
			assert.ErrorAs(t, err, &se)
			assert.GreaterOrEqual(t, se.Column, 1)
		})
	}
}
