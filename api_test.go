// This file is part of brokenoptions.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package brokenoptions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, p *Parser)
		args  []string
		err   error
	}{
		{"unknown arguments", func(t *testing.T, p *Parser) {}, []string{"--opt1", "12", "--opt2", "abc"}, ErrUnknownArgument},
		{"lone dash is unknown", func(t *testing.T, p *Parser) {}, []string{"-"}, ErrUnknownArgument},
		{"no abbreviations", func(t *testing.T, p *Parser) { must(t)(p.Option("option")) }, []string{"--opt", "x"}, ErrUnknownArgument},
		{"no clustering", func(t *testing.T, p *Parser) {
			must(t)(p.Toggle("a", p.ShortName("a")))
			must(t)(p.Toggle("b", p.ShortName("b")))
		}, []string{"-ab"}, ErrUnknownArgument},
		{"missing required", func(t *testing.T, p *Parser) { must(t)(p.Option("opt3")) }, []string{}, ErrMissingValue},
		{"missing required nil args", func(t *testing.T, p *Parser) { must(t)(p.Option("opt3")) }, nil, ErrMissingValue},
		{"option twice", func(t *testing.T, p *Parser) { must(t)(p.Option("opt3")) }, []string{"--opt3", "12", "--opt3", "13"}, ErrDuplicateValue},
		{"option twice mixed with short", func(t *testing.T, p *Parser) { must(t)(p.Option("opt3", p.ShortName("o"))) }, []string{"--opt3", "12", "-o", "13"}, ErrDuplicateValue},
		{"identical option twice", func(t *testing.T, p *Parser) { must(t)(p.Option("opt3")) }, []string{"--opt3", "12", "--opt3", "12"}, ErrDuplicateValue},
		{"option twice with default", func(t *testing.T, p *Parser) { must(t)(p.Option("opt3", p.DefaultValue("x"))) }, []string{"--opt3=1", "--opt3=2"}, ErrDuplicateValue},
		{"missing argument", func(t *testing.T, p *Parser) { must(t)(p.Option("opt1")) }, []string{"--opt1"}, ErrMissingArgument},
		{"missing argument multi", func(t *testing.T, p *Parser) { must(t)(p.MultiOption("opt1")) }, []string{"--opt1", "a", "--opt1"}, ErrMissingArgument},
		{"toggle with value", func(t *testing.T, p *Parser) { must(t)(p.Toggle("opt1")) }, []string{"--opt1=true"}, ErrUnexpectedValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logTestOutput := setupTestLogging(t)
			defer logTestOutput()

			p := New()
			tt.setup(t, p)
			opts, err := p.Parse(tt.args)
			checkError(t, err, tt.err)
			assert.True(t, IsParseError(err))
			assert.False(t, IsConfigError(err))
			assert.Nil(t, opts)
		})
	}
}

func TestParseValues(t *testing.T) {
	t.Run("simple string values", func(t *testing.T) {
		p := New()
		must(t)(p.Option("opt2"))
		opts, err := p.Parse([]string{"--opt2", "abc"})
		require.NoError(t, err)
		v, err := opts.Get("opt2")
		require.NoError(t, err)
		assert.Equal(t, "abc", v)
		assert.True(t, opts.Given("opt2"))
		assert.Equal(t, "--opt2", opts.CalledAs("opt2"))
	})

	t.Run("integer values", func(t *testing.T) {
		p := New()
		must(t)(p.Option("opt1"))
		opts, err := p.Parse([]string{"--opt1", "12"})
		require.NoError(t, err)
		i, err := As[int](opts, "opt1")
		require.NoError(t, err)
		assert.Equal(t, 12, i)
	})

	t.Run("short names", func(t *testing.T) {
		p := New()
		must(t)(p.Option("opt2", p.ShortName("a")))
		must(t)(p.Option("opt1", p.ShortName("o")))
		opts, err := p.Parse([]string{"-a", "abc", "-o", "12"})
		require.NoError(t, err)
		v, err := opts.Get("opt2")
		require.NoError(t, err)
		assert.Equal(t, "abc", v)
		i, err := As[int](opts, "opt1")
		require.NoError(t, err)
		assert.Equal(t, 12, i)
		assert.Equal(t, "-o", opts.CalledAs("opt1"))
	})

	t.Run("default value", func(t *testing.T) {
		p := New()
		must(t)(p.Option("opt3", p.ShortName("o"), p.DefaultValue("hello")))
		opts, err := p.Parse([]string{})
		require.NoError(t, err)
		v, err := opts.Get("opt3")
		require.NoError(t, err)
		assert.Equal(t, "hello", v)
		assert.False(t, opts.Given("opt3"))
		assert.Equal(t, "", opts.CalledAs("opt3"))
	})

	t.Run("equals and separate argument are the same", func(t *testing.T) {
		for _, args := range [][]string{{"--opt1=12"}, {"--opt1", "12"}, {"-o=12"}, {"-o", "12"}} {
			p := New()
			must(t)(p.Option("opt1", p.ShortName("o")))
			opts, err := p.Parse(args)
			require.NoError(t, err, "args: %v", args)
			i, err := As[int](opts, "opt1")
			require.NoError(t, err)
			assert.Equal(t, 12, i, "args: %v", args)
		}
	})

	t.Run("equals splits on the first one", func(t *testing.T) {
		p := New()
		must(t)(p.Option("define"))
		opts, err := p.Parse([]string{"--define=key=value"})
		require.NoError(t, err)
		v, _ := opts.Get("define")
		assert.Equal(t, "key=value", v)
	})

	t.Run("next argument is taken verbatim", func(t *testing.T) {
		p := New()
		must(t)(p.Option("opt1"))
		must(t)(p.Toggle("opt2"))
		opts, err := p.Parse([]string{"--opt1", "--opt2"})
		require.NoError(t, err)
		v, _ := opts.Get("opt1")
		assert.Equal(t, "--opt2", v)
		assert.False(t, opts.Given("opt2"))
	})

	t.Run("multi option", func(t *testing.T) {
		p := New()
		must(t)(p.MultiOption("opt3", p.ShortName("o")))
		opts, err := p.Parse([]string{"--opt3", "12", "-o=13", "--opt3=12"})
		require.NoError(t, err)
		count, err := opts.Count("opt3")
		require.NoError(t, err)
		assert.Equal(t, 3, count)
		values, err := opts.Values("opt3")
		require.NoError(t, err)
		assert.Equal(t, []string{"12", "13", "12"}, values)
		v, err := opts.GetAt("opt3", 1)
		require.NoError(t, err)
		assert.Equal(t, "13", v)
	})

	t.Run("multi option equal values", func(t *testing.T) {
		p := New()
		must(t)(p.MultiOption("opt3"))
		opts, err := p.Parse([]string{"--opt3", "12", "--opt3", "12"})
		require.NoError(t, err)
		values, _ := opts.Values("opt3")
		assert.Equal(t, []string{"12", "12"}, values)
	})

	t.Run("multi option absent", func(t *testing.T) {
		p := New()
		must(t)(p.MultiOption("opt3"))
		opts, err := p.Parse(nil)
		require.NoError(t, err)
		count, err := opts.Count("opt3")
		require.NoError(t, err)
		assert.Equal(t, 0, count)
		assert.False(t, opts.Given("opt3"))
	})

	t.Run("toggles", func(t *testing.T) {
		p := New()
		must(t)(p.Toggle("opt1"))
		must(t)(p.Toggle("opt2", p.ShortName("o")))
		must(t)(p.Toggle("opt3"))
		opts, err := p.Parse([]string{"--opt1", "-o"})
		require.NoError(t, err)
		assert.True(t, opts.Given("opt1"))
		assert.True(t, opts.Given("opt2"))
		assert.False(t, opts.Given("opt3"))
		assert.False(t, opts.Given("unknown"))
	})

	t.Run("env var", func(t *testing.T) {
		t.Setenv("BROKENOPTIONS_LEVEL", "debug")
		p := New()
		must(t)(p.Option("level", p.EnvVar("BROKENOPTIONS_LEVEL")))
		opts, err := p.Parse(nil)
		require.NoError(t, err)
		v, err := opts.Get("level")
		require.NoError(t, err)
		assert.Equal(t, "debug", v)
		assert.False(t, opts.Given("level"))

		opts, err = p.Parse([]string{"--level", "warn"})
		require.NoError(t, err)
		v, _ = opts.Get("level")
		assert.Equal(t, "warn", v)
		assert.True(t, opts.Given("level"))
	})

	t.Run("env var unset", func(t *testing.T) {
		t.Setenv("BROKENOPTIONS_LEVEL", "")
		p := New()
		must(t)(p.Option("level", p.EnvVar("BROKENOPTIONS_LEVEL")))
		_, err := p.Parse(nil)
		checkError(t, err, ErrMissingValue)
	})
}

func TestParsePositionals(t *testing.T) {
	t.Run("terminator", func(t *testing.T) {
		p := New()
		opts, err := p.Parse([]string{"--", "--opt1", "12", "--opt2", "13"})
		require.NoError(t, err)
		assert.Equal(t, []string{"--opt1", "12", "--opt2", "13"}, opts.Positionals())
		for i, expected := range []string{"--opt1", "12", "--opt2", "13"} {
			v, err := opts.Positional(i)
			require.NoError(t, err)
			assert.Equal(t, expected, v)
			v, err = opts.Positional(i - 4)
			require.NoError(t, err)
			assert.Equal(t, expected, v)
		}
	})

	t.Run("only the first terminator is consumed", func(t *testing.T) {
		p := New()
		must(t)(p.Toggle("opt1"))
		opts, err := p.Parse([]string{"a", "--", "--opt1", "--"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "--opt1", "--"}, opts.Positionals())
		assert.False(t, opts.Given("opt1"))
	})

	t.Run("positionals between options", func(t *testing.T) {
		p := New()
		must(t)(p.Option("opt1"))
		must(t)(p.Toggle("verbose"))
		opts, err := p.Parse([]string{"a", "--opt1", "x", "b", "", "--verbose", "c"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "", "c"}, opts.Positionals())
	})

	t.Run("ignore unknown", func(t *testing.T) {
		p := New().IgnoreUnknown(true)
		opts, err := p.Parse([]string{"--unknown", "value", "--", "--opt1", "12", "--opt2", "13"})
		require.NoError(t, err)
		assert.Equal(t, []string{"--unknown", "value", "--opt1", "12", "--opt2", "13"}, opts.Positionals())
	})

	t.Run("ignore unknown keeps order and known options", func(t *testing.T) {
		p := New().IgnoreUnknown(true)
		must(t)(p.Option("opt1"))
		opts, err := p.Parse([]string{"a", "--unknown=x", "b", "--opt1", "12", "c", "-u", "--", "d"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "--unknown=x", "b", "c", "-u", "--", "d"}, opts.Positionals())
		v, _ := opts.Get("opt1")
		assert.Equal(t, "12", v)
	})

	t.Run("ignore unknown as last argument", func(t *testing.T) {
		p := New().IgnoreUnknown(true)
		opts, err := p.Parse([]string{"a", "--unknown"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "--unknown"}, opts.Positionals())
	})

	t.Run("ignore unknown can be disabled", func(t *testing.T) {
		p := New().IgnoreUnknown(true).IgnoreUnknown(false)
		_, err := p.Parse([]string{"--unknown", "value"})
		checkError(t, err, ErrUnknownArgument)
	})
}

func TestParserReuse(t *testing.T) {
	p := New()
	must(t)(p.Option("opt1", p.DefaultValue("d")))
	must(t)(p.MultiOption("multi"))
	must(t)(p.Toggle("verbose"))

	first, err := p.Parse([]string{"--opt1", "a", "--multi", "x", "--verbose", "pos"})
	require.NoError(t, err)

	second, err := p.Parse([]string{"--multi", "y"})
	require.NoError(t, err)

	// Values don't leak into the second result.
	v, _ := second.Get("opt1")
	assert.Equal(t, "d", v)
	assert.False(t, second.Given("opt1"))
	assert.False(t, second.Given("verbose"))
	values, _ := second.Values("multi")
	assert.Equal(t, []string{"y"}, values)
	assert.Empty(t, second.Positionals())

	// The first result is not affected by the second parse.
	v, _ = first.Get("opt1")
	assert.Equal(t, "a", v)
	assert.True(t, first.Given("verbose"))
	values, _ = first.Values("multi")
	assert.Equal(t, []string{"x"}, values)
	assert.Equal(t, []string{"pos"}, first.Positionals())

	// Nor by later definitions.
	must(t)(p.Option("opt1", p.DefaultValue("changed")))
	must(t)(p.Option("late"))
	v, _ = second.Get("opt1")
	assert.Equal(t, "d", v)
	_, err = first.Get("late")
	checkError(t, err, ErrNotFound)

	// A failed parse after a successful one.
	_, err = p.Parse([]string{"--opt1", "a"})
	checkError(t, err, ErrMissingValue)
}

func TestParseDoesNotModifyArgs(t *testing.T) {
	args := []string{"--opt1=1", "a", "--", "b"}
	p := New()
	must(t)(p.Option("opt1"))
	opts, err := p.Parse(args)
	require.NoError(t, err)
	assert.Equal(t, []string{"--opt1=1", "a", "--", "b"}, args)

	args[1] = "changed"
	v, _ := opts.Positional(0)
	assert.Equal(t, "a", v)
}

func TestValidationOrder(t *testing.T) {
	p := New()
	must(t)(p.Option("b"))
	must(t)(p.Option("a"))
	_, err := p.Parse(nil)
	checkError(t, err, ErrMissingValue)
	// First definition is reported first.
	assert.Contains(t, err.Error(), "'b'")
}
