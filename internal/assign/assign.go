// ============================================================================
// boolex - Boolean logic toolkit
// ============================================================================
//
// Package:     assign
// Description: Parses variable assignments given on the command line, either
//              as A=1,B=0 lists or as JSON objects
// Author:      msto63
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package assign

import (
	"fmt"
	"strings"

	"github.com/valyala/fastjson"

	mdwerror "github.com/msto63/boolex/foundation/core/error"
	mdwast "github.com/msto63/boolex/foundation/logic/ast"
)

var parserPool fastjson.ParserPool

// ParseSet parses a comma separated list like "A=1, B=false". Values may be
// 0/1, true/false, t/f or on/off in any case. Empty input yields an empty
// assignment.
func ParseSet(s string) (mdwast.Assignment, error) {
	assignment := make(mdwast.Assignment)
	if strings.TrimSpace(s) == "" {
		return assignment, nil
	}

	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, invalid(fmt.Sprintf("assignment %q is not of the form NAME=VALUE", pair), pair)
		}

		v, err := variable(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		b, ok := parseBool(strings.TrimSpace(value))
		if !ok {
			return nil, invalid(fmt.Sprintf("value %q for %c is not a boolean", value, v), pair)
		}
		if err := set(assignment, v, b); err != nil {
			return nil, err
		}
	}

	return assignment, nil
}

// ParseJSON parses an object like {"A": true, "B": 0}. Values may be JSON
// booleans, the numbers 0/1 or strings accepted by ParseSet.
func ParseJSON(data []byte) (mdwast.Assignment, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid assignment json").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("assign.ParseJSON")
	}

	obj, err := v.Object()
	if err != nil {
		return nil, invalid("assignment json must be an object", string(data))
	}

	assignment := make(mdwast.Assignment)
	var visitErr error
	obj.Visit(func(key []byte, val *fastjson.Value) {
		if visitErr != nil {
			return
		}
		name, err := variable(string(key))
		if err != nil {
			visitErr = err
			return
		}
		b, err := jsonBool(name, val)
		if err != nil {
			visitErr = err
			return
		}
		visitErr = set(assignment, name, b)
	})
	if visitErr != nil {
		return nil, visitErr
	}

	return assignment, nil
}

func jsonBool(name rune, val *fastjson.Value) (bool, error) {
	switch val.Type() {
	case fastjson.TypeTrue:
		return true, nil
	case fastjson.TypeFalse:
		return false, nil
	case fastjson.TypeNumber:
		n, err := val.Int()
		if err == nil && (n == 0 || n == 1) {
			return n == 1, nil
		}
	case fastjson.TypeString:
		if b, ok := parseBool(string(val.GetStringBytes())); ok {
			return b, nil
		}
	}
	return false, invalid(fmt.Sprintf("value %s for %c is not a boolean", val.String(), name), val.String())
}

func variable(name string) (rune, error) {
	if len(name) != 1 || name[0] < 'A' || name[0] > 'Z' {
		return 0, invalid(fmt.Sprintf("%q is not a variable, expected a single letter A-Z", name), name)
	}
	return rune(name[0]), nil
}

func set(assignment mdwast.Assignment, v rune, b bool) error {
	if _, dup := assignment[v]; dup {
		return invalid(fmt.Sprintf("variable %c assigned more than once", v), string(v))
	}
	assignment[v] = b
	return nil
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "1", "true", "t", "on":
		return true, true
	case "0", "false", "f", "off":
		return false, true
	}
	return false, false
}

func invalid(msg, input string) error {
	return mdwerror.New(msg).
		WithCode(mdwerror.CodeInvalidInput).
		WithDetail("input", input).
		WithOperation("assign.Parse")
}
