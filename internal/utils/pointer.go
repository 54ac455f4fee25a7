package utils

// I64Ptr returns a pointer to the given int64 value.
func I64Ptr(v int64) *int64 { return &v }
