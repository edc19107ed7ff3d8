//go:build windows

package checker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	modshell32          = windows.NewLazySystemDLL("shell32.dll")
	procShellExecuteExW = modshell32.NewProc("ShellExecuteExW")
)

const (
	seeMaskNoCloseProcess = 0x00000040
	swHide                = 0
)

// shellExecuteInfo mirrors SHELLEXECUTEINFOW. ShellExecuteExW with the
// "runas" verb is the only way to trigger the elevation prompt and still
// get a waitable process handle back.
type shellExecuteInfo struct {
	cbSize       uint32
	fMask        uint32
	hwnd         windows.Handle
	lpVerb       *uint16
	lpFile       *uint16
	lpParameters *uint16
	lpDirectory  *uint16
	nShow        int32
	hInstApp     windows.Handle
	lpIDList     uintptr
	lpClass      *uint16
	hkeyClass    windows.Handle
	dwHotKey     uint32
	hIcon        windows.Handle
	hProcess     windows.Handle
}

// launchStrategy is one way of getting the tool running elevated with a
// hidden window.
type launchStrategy struct {
	name   string
	direct bool
	run    func() (int, error)
}

// launchStrategies returns the fallback chain. The VBScript launch hides
// the console window entirely; the SYSTEM scheduled task survives
// environments that block script hosts; the direct launch is the plain
// ShellExecuteEx path and may flash a window.
func launchStrategies(executable, parameters string, timeout time.Duration) []launchStrategy {
	return []launchStrategy{
		{name: "vbs-hidden", run: func() (int, error) {
			return runElevatedScript(executable, parameters, timeout)
		}},
		{name: "scheduled-task-hidden", run: func() (int, error) {
			return runElevatedTask(executable, parameters, timeout)
		}},
		{name: "direct-elevated", direct: true, run: func() (int, error) {
			return runElevatedCommand(executable, parameters, timeout)
		}},
	}
}

// runElevatedCommand launches file with the "runas" verb, waits for the
// process to exit and returns its exit code.
func runElevatedCommand(file, parameters string, timeout time.Duration) (int, error) {
	verbPtr, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return 0, err
	}
	filePtr, err := windows.UTF16PtrFromString(file)
	if err != nil {
		return 0, err
	}
	paramsPtr, err := windows.UTF16PtrFromString(parameters)
	if err != nil {
		return 0, err
	}

	info := shellExecuteInfo{
		fMask:        seeMaskNoCloseProcess,
		lpVerb:       verbPtr,
		lpFile:       filePtr,
		lpParameters: paramsPtr,
		nShow:        swHide,
	}
	info.cbSize = uint32(unsafe.Sizeof(info))

	ret, _, callErr := procShellExecuteExW.Call(uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		if errors.Is(callErr, windows.ERROR_CANCELLED) {
			return 0, ErrElevationDenied
		}
		return 0, fmt.Errorf("ShellExecuteEx failed: %w", callErr)
	}
	if info.hProcess == 0 {
		return 0, fmt.Errorf("ShellExecuteEx did not return a process handle")
	}
	defer windows.CloseHandle(info.hProcess)

	waitMillis := uint32(timeout.Milliseconds())
	if waitMillis == 0 {
		waitMillis = 1
	}
	event, err := windows.WaitForSingleObject(info.hProcess, waitMillis)
	if err != nil {
		return 0, fmt.Errorf("wait on elevated process failed: %w", err)
	}
	switch event {
	case windows.WAIT_OBJECT_0:
	case uint32(windows.WAIT_TIMEOUT):
		return 0, ErrLaunchTimeout
	default:
		return 0, fmt.Errorf("unexpected wait result: %d", event)
	}

	var exitCode uint32
	if err := windows.GetExitCodeProcess(info.hProcess, &exitCode); err != nil {
		return 0, fmt.Errorf("unable to get exit code of elevated process: %w", err)
	}
	return int(exitCode), nil
}

// runElevatedScript drives the tool through a temporary VBScript run by an
// elevated wscript.exe. sh.Run with window style 0 keeps the launch fully
// hidden, which ShellExecuteEx alone cannot guarantee for console tools.
func runElevatedScript(executable, parameters string, timeout time.Duration) (int, error) {
	commandLine := windows.ComposeCommandLine([]string{filepath.Base(executable), parameters})

	script := "Set sh = CreateObject(\"WScript.Shell\")\r\n" +
		fmt.Sprintf("sh.CurrentDirectory = %s\r\n", vbsStringLiteral(filepath.Dir(executable))) +
		fmt.Sprintf("WScript.Quit sh.Run(%s, 0, True)\r\n", vbsStringLiteral(commandLine))

	scriptPath, err := writeTempScript("cdi_*.vbs", script, true)
	if err != nil {
		return 0, err
	}
	defer os.Remove(scriptPath)

	params := fmt.Sprintf(`//B //NoLogo "%s"`, scriptPath)
	return runElevatedCommand("wscript.exe", params, timeout)
}

// runElevatedTask registers and fires a one-shot SYSTEM scheduled task via
// an elevated cmd.exe batch script. Tasks run by the scheduler never show
// a window, and /RU SYSTEM sidesteps a second elevation prompt.
func runElevatedTask(executable, parameters string, timeout time.Duration) (int, error) {
	taskName := fmt.Sprintf("CheckDiskGo_CDI_%d_%d", os.Getpid(), time.Now().UnixMilli())
	taskCommand := windows.ComposeCommandLine([]string{executable, parameters})

	script := "@echo off\r\n" +
		fmt.Sprintf("set \"CHECK_DISK_GO_TASK_COMMAND=%s\"\r\n", taskCommand) +
		fmt.Sprintf(`schtasks /Create /TN "%s" /TR "%%CHECK_DISK_GO_TASK_COMMAND%%" /SC ONCE /ST 00:00 /RU SYSTEM /RL HIGHEST /F /Z >nul`, taskName) + "\r\n" +
		"if errorlevel 1 exit /b 11\r\n" +
		fmt.Sprintf(`schtasks /Run /TN "%s" >nul`, taskName) + "\r\n" +
		"if errorlevel 1 exit /b 12\r\n" +
		"exit /b 0\r\n"

	scriptPath, err := writeTempScript("cdi_*.cmd", script, false)
	if err != nil {
		return 0, err
	}
	defer os.Remove(scriptPath)

	params := fmt.Sprintf(`/C "%s"`, scriptPath)
	return runElevatedCommand("cmd.exe", params, timeout)
}

// writeTempScript writes a temporary script file. wscript.exe only reads
// //B scripts reliably as UTF-16 with BOM; cmd.exe wants plain bytes.
func writeTempScript(pattern, content string, utf16le bool) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}

	if utf16le {
		w := transform.NewWriter(f, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder())
		if _, err = w.Write([]byte(content)); err == nil {
			err = w.Close()
		}
	} else {
		_, err = f.WriteString(content)
	}

	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func vbsStringLiteral(text string) string {
	return `"` + strings.ReplaceAll(text, `"`, `""`) + `"`
}
