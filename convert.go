// This file is part of brokenoptions.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package brokenoptions

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/nitro-cxx/brokenoptions/text"
)

// Value - Types option values can be converted to.
type Value interface {
	string | bool | int | int64 | uint | uint64 | float64 | time.Duration
}

// As - Returns the value of an option converted to T.
//
//	port, err := brokenoptions.As[int](opts, "port")
func As[T Value](o *Options, name string) (T, error) {
	v, err := o.Get(name)
	if err != nil {
		var zero T
		return zero, err
	}
	return convert[T](name, v)
}

// AsAt - Returns the i-th value of a multi option converted to T.
func AsAt[T Value](o *Options, name string, i int) (T, error) {
	v, err := o.GetAt(name, i)
	if err != nil {
		var zero T
		return zero, err
	}
	return convert[T](name, v)
}

// PositionalAs - Returns a positional argument converted to T.
func PositionalAs[T Value](o *Options, i int) (T, error) {
	v, err := o.Positional(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return convert[T](fmt.Sprintf("positional %d", i), v)
}

func convert[T Value](name, raw string) (T, error) {
	var out T
	var err error
	switch p := any(&out).(type) {
	case *string:
		*p = raw
	case *bool:
		*p, err = strconv.ParseBool(raw)
	case *int:
		*p, err = strconv.Atoi(raw)
	case *int64:
		*p, err = strconv.ParseInt(raw, 10, 64)
	case *uint:
		var u uint64
		u, err = strconv.ParseUint(raw, 10, strconv.IntSize)
		*p = uint(u)
	case *uint64:
		*p, err = strconv.ParseUint(raw, 10, 64)
	case *float64:
		*p, err = strconv.ParseFloat(raw, 64)
	case *time.Duration:
		*p, err = time.ParseDuration(raw)
	}
	if err != nil {
		var zero T
		return zero, errors.Wrapf(ErrConversion, text.ErrorConvert, name, raw, fmt.Sprintf("%T", zero))
	}
	Logger.Printf("converted '%s' value '%s' to %T", name, raw, out)
	return out, nil
}
