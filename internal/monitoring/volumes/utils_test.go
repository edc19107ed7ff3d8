package volumes

import "testing"

func TestIsExternalMount(t *testing.T) {
	tests := []struct {
		name       string
		mountPoint string
		device     string
		want       bool
	}{
		{"root filesystem", "/", "/dev/nvme0n1p2", false},
		{"media mount", "/media/usb", "/dev/sdb1", true},
		{"mnt mount", "/mnt/backup", "/dev/sdc1", true},
		{"run media mount", "/run/media/user/stick", "/dev/sdd1", true},
		{"nfs share", "/data", "server:/export/nfs", true},
		{"cifs share", "/shares", "//server/cifs-share", true},
		{"plain internal disk", "/home", "/dev/sda3", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isExternalMount(tt.mountPoint, tt.device); got != tt.want {
				t.Errorf("isExternalMount(%q, %q) = %v, want %v",
					tt.mountPoint, tt.device, got, tt.want)
			}
		})
	}
}
