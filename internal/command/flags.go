package command

import (
	"github.com/spf13/pflag"
)

type FlagType int

const (
	FlagString FlagType = iota
	FlagBool
	FlagInt
)

// Flag declares one named option a command accepts.
type Flag struct {
	Type      FlagType
	Shorthand string
	Default   any
	Usage     string
}

// Flags maps long flag names to their declarations.
type Flags map[string]Flag

// parse extracts the declared flags from tokens. Unknown flags are ignored;
// everything left over comes back as positional tokens. Every declared flag
// is present in the result with its parsed-or-default value.
func (f Flags) parse(tokens []string) (map[string]any, []string, error) {
	fs := pflag.NewFlagSet("command", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}

	for name, spec := range f {
		switch spec.Type {
		case FlagBool:
			fs.BoolP(name, spec.Shorthand, asBool(spec.Default), spec.Usage)
		case FlagInt:
			fs.IntP(name, spec.Shorthand, asInt(spec.Default), spec.Usage)
		default:
			fs.StringP(name, spec.Shorthand, asString(spec.Default), spec.Usage)
		}
	}

	if err := fs.Parse(tokens); err != nil {
		return nil, nil, err
	}

	values := make(map[string]any, len(f))
	for name, spec := range f {
		switch spec.Type {
		case FlagBool:
			v, _ := fs.GetBool(name)
			values[name] = v
		case FlagInt:
			v, _ := fs.GetInt(name)
			values[name] = v
		default:
			v, _ := fs.GetString(name)
			values[name] = v
		}
	}
	return values, fs.Args(), nil
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asInt(v any) int {
	i, _ := v.(int)
	return i
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
