// Package mapper holds generic slice conversions shared by the persistence
// mappers and the application DTOs.
package mapper

import "fmt"

// MapSlice converts every element with fn. A nil input stays nil so JSON
// output keeps the difference between "absent" and "empty".
func MapSlice[T any, R any](items []T, fn func(T) R) []R {
	if items == nil {
		return nil
	}

	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// MapSliceWithError is MapSlice for fallible conversions. It stops at the
// first failure and returns that error unwrapped.
func MapSliceWithError[T any, R any](items []T, fn func(T) (R, error)) ([]R, error) {
	if items == nil {
		return nil, nil
	}

	out := make([]R, len(items))
	for i, item := range items {
		mapped, err := fn(item)
		if err != nil {
			return nil, err
		}
		out[i] = mapped
	}
	return out, nil
}

// MapRows converts rows loaded by gorm into domain objects. Rows mapping to
// nil are dropped; a failure names the offending row by its key.
func MapRows[M any, R any, K any](rows []M, fn func(*M) (*R, error), key func(*M) K) ([]*R, error) {
	out := make([]*R, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		mapped, err := fn(row)
		if err != nil {
			return nil, fmt.Errorf("failed to map row %v: %w", key(row), err)
		}
		if mapped != nil {
			out = append(out, mapped)
		}
	}
	return out, nil
}
