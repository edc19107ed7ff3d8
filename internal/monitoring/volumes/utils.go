package volumes

import "strings"

// isExternalMount checks if a partition is from an external or network device
func isExternalMount(mountPoint, device string) bool {
	externalPaths := []string{"/media/", "/mnt/", "/run/media/"}
	for _, path := range externalPaths {
		if strings.HasPrefix(mountPoint, path) {
			return true
		}
	}

	networkFS := []string{"nfs", "cifs", "smbfs", "ftpfs", "sshfs"}
	for _, fs := range networkFS {
		if strings.Contains(device, fs) {
			return true
		}
	}

	return false
}
