//go:build windows

package checker

import (
	"strings"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	moduser32   = windows.NewLazySystemDLL("user32.dll")
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procOpenClipboard              = moduser32.NewProc("OpenClipboard")
	procCloseClipboard             = moduser32.NewProc("CloseClipboard")
	procIsClipboardFormatAvailable = moduser32.NewProc("IsClipboardFormatAvailable")
	procGetClipboardData           = moduser32.NewProc("GetClipboardData")
	procGlobalLock                 = modkernel32.NewProc("GlobalLock")
	procGlobalUnlock               = modkernel32.NewProc("GlobalUnlock")
)

const cfUnicodeText = 13

// readClipboardText returns the current clipboard text. The open is
// retried briefly because the clipboard is a single shared lock and the
// tool may still be holding it right after writing its report. Only
// CF_UNICODETEXT is requested; Windows synthesizes it from CF_TEXT when a
// writer provided only the ANSI format.
func readClipboardText() (string, bool) {
	opened := false
	for i := 0; i < 20; i++ {
		if r, _, _ := procOpenClipboard.Call(0); r != 0 {
			opened = true
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	if !opened {
		return "", false
	}
	defer procCloseClipboard.Call()

	if r, _, _ := procIsClipboardFormatAvailable.Call(cfUnicodeText); r == 0 {
		return "", false
	}
	handle, _, _ := procGetClipboardData.Call(cfUnicodeText)
	if handle == 0 {
		return "", false
	}
	ptr, _, _ := procGlobalLock.Call(handle)
	if ptr == 0 {
		return "", false
	}
	defer procGlobalUnlock.Call(handle)

	text := strings.TrimSpace(windows.UTF16PtrToString((*uint16)(unsafe.Pointer(ptr))))
	return text, text != ""
}
