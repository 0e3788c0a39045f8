// Package win32 binds the user32 and kernel32 functions behind the
// SoftModalMessageBox wrapper. Everything is resolved lazily on first use.
package win32
