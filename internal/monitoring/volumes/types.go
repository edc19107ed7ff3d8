package volumes

// VolumeInfo contains usage information for one mounted logical volume
type VolumeInfo struct {
	Device     string  `json:"device"`
	MountPoint string  `json:"mount_point"`
	FileSystem string  `json:"file_system"`
	Total      uint64  `json:"total"`
	Used       uint64  `json:"used"`
	Free       uint64  `json:"free"`
	Usage      float64 `json:"usage"`
	IsReadOnly bool    `json:"is_readonly"`
	IsExternal bool    `json:"is_external"`
}

// TotalStorage contains aggregated capacity across all mounted volumes
type TotalStorage struct {
	TotalCapacity uint64  `json:"total_capacity"`
	TotalUsed     uint64  `json:"total_used"`
	TotalFree     uint64  `json:"total_free"`
	UsagePercent  float64 `json:"usage_percent"`

	InternalDevices int `json:"internal_devices"`
	ExternalDevices int `json:"external_devices"`
}
