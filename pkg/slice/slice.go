// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

/*
Package slice complements the standard [slices] package with the generic
helpers used to shape list payloads.
*/
package slice

import "strings"

// Map maps a slice of type T to a slice of type U.
//
// A nil input yields an empty, non-nil slice so JSON encodes `[]`, not `null`.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}

// Filter returns the elements for which predicate is true, in order.
func Filter[T any](input []T, predicate func(T) bool) []T {
	var result []T
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// CleanStrings trims every entry and drops blanks and repeats, keeping first
// occurrences in order. A nil input stays nil.
func CleanStrings(input []string) []string {
	if input == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, v := range input {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
