//go:build !numdebug

package linalg

// DebugChecks reports whether element access is bounds-checked.
// Build with -tags numdebug to enable the checks.
const DebugChecks = false
