package utils

import "time"

func StringPtr(s string) *string {
	return &s
}

func IntPtr(i int) *int {
	return &i
}

func Int64Ptr(i int64) *int64 {
	return &i
}

func TimePtr(t time.Time) *time.Time {
	return &t
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NullableString returns nil for empty strings so optional columns store
// NULL instead of "".
func NullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
