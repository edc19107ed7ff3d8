//go:build !windows

package checker

// readClipboardText is Windows-only; elsewhere the clipboard channel is
// simply absent.
func readClipboardText() (string, bool) {
	return "", false
}
