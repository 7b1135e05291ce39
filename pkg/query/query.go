// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

/*
Package query parses optional URL query parameters used as list filters.

Every parser distinguishes an absent parameter (ok is false) from a present
but malformed one (err is non-nil), so handlers can reject `?featured=maybe`
instead of silently ignoring it.
*/
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// String returns the trimmed value of key and whether it was non-empty.
func String(values url.Values, key string) (string, bool) {
	value := strings.TrimSpace(values.Get(key))
	return value, value != ""
}

// Bool parses key as a boolean ("true", "1", "false", "0").
func Bool(values url.Values, key string) (value bool, ok bool, err error) {
	raw, present := String(values, key)
	if !present {
		return false, false, nil
	}

	value, err = strconv.ParseBool(raw)
	if err != nil {
		return false, false, fmt.Errorf("query: %s must be a boolean", key)
	}
	return value, true, nil
}

// ID parses key as a positive integer identifier.
func ID(values url.Values, key string) (value int64, ok bool, err error) {
	raw, present := String(values, key)
	if !present {
		return 0, false, nil
	}

	value, err = strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, false, fmt.Errorf("query: %s must be a positive integer", key)
	}
	return value, true, nil
}

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
