//go:build numdebug

package linalg

// DebugChecks reports whether element access is bounds-checked.
const DebugChecks = true
