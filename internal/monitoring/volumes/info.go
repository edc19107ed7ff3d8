// Package volumes reports logical volume usage. It complements the disk
// report with capacity context; it performs no health analysis.
package volumes

import (
	"fmt"

	"CheckDiskGo/internal/pkg/logger"

	"github.com/shirou/gopsutil/disk"
)

// getVolumeInfoFunc is a variable so it can be swapped in tests
var getVolumeInfoFunc = getVolumeInfo

// GetVolumeInfo returns per-volume usage plus aggregated totals.
func GetVolumeInfo() ([]VolumeInfo, *TotalStorage, error) {
	return getVolumeInfoFunc()
}

func getVolumeInfo() ([]VolumeInfo, *TotalStorage, error) {
	partitions, err := disk.Partitions(true)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list partitions: %w", err)
	}

	var infos []VolumeInfo
	total := &TotalStorage{}

	for _, partition := range partitions {
		usage, err := disk.Usage(partition.Mountpoint)
		if err != nil {
			logger.Debug("Skipping partition without usage data",
				logger.String("mountpoint", partition.Mountpoint),
				logger.String("error", err.Error()))
			continue
		}
		if usage.Total == 0 {
			continue
		}

		external := isExternalMount(partition.Mountpoint, partition.Device)
		infos = append(infos, VolumeInfo{
			Device:     partition.Device,
			MountPoint: partition.Mountpoint,
			FileSystem: partition.Fstype,
			Total:      usage.Total,
			Used:       usage.Used,
			Free:       usage.Free,
			Usage:      usage.UsedPercent,
			IsReadOnly: partition.Opts == "ro",
			IsExternal: external,
		})

		total.TotalCapacity += usage.Total
		total.TotalUsed += usage.Used
		total.TotalFree += usage.Free
		if external {
			total.ExternalDevices++
		} else {
			total.InternalDevices++
		}
	}

	if total.TotalCapacity > 0 {
		total.UsagePercent = float64(total.TotalUsed) / float64(total.TotalCapacity) * 100
	}
	return infos, total, nil
}
