package checker

import "errors"

var (
	// ErrElevationDenied means the user cancelled the elevation prompt.
	// It aborts the whole run: retrying would just re-prompt.
	ErrElevationDenied = errors.New("elevation prompt was cancelled")

	// ErrLaunchTimeout means an elevated process did not finish in time.
	ErrLaunchTimeout = errors.New("elevated command timed out")

	// ErrNoReport means every launch strategy completed without leaving a
	// readable CrystalDiskInfo report in the output file or clipboard.
	ErrNoReport = errors.New("CrystalDiskInfo did not produce readable output")

	// ErrUnsupported is returned on platforms without elevation support.
	ErrUnsupported = errors.New("disk checks are only supported on Windows")
)
