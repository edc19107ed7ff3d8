package checker

import (
	"fmt"
	"os"
	"path/filepath"
)

// executableCandidates in preference order. 64-bit builds ship as
// DiskInfo64.exe, older bundles as DiskInfo.exe.
var executableCandidates = []string{"DiskInfo64.exe", "DiskInfo32.exe", "DiskInfo.exe"}

// findExecutable locates the CrystalDiskInfo binary under toolPath and
// verifies the support directories the tool refuses to start without.
func findExecutable(toolPath string) (string, error) {
	if toolPath == "" {
		return "", fmt.Errorf("checker tool_path is not configured")
	}

	var executable string
	for _, candidate := range executableCandidates {
		path := filepath.Join(toolPath, candidate)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			executable = path
			break
		}
	}
	if executable == "" {
		return "", fmt.Errorf("CrystalDiskInfo executable was not found in %s", toolPath)
	}

	for _, dir := range []string{"CdiResource", "Smart"} {
		if info, err := os.Stat(filepath.Join(toolPath, dir)); err != nil || !info.IsDir() {
			return "", fmt.Errorf("CrystalDiskInfo %s directory is missing in %s", dir, toolPath)
		}
	}

	return executable, nil
}
