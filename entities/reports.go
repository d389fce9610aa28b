package entities

// Aggregate rows produced by the reporting queries. These are scan targets,
// not tables.

// DeviceUsageSummary aggregates all usage records of one device.
type DeviceUsageSummary struct {
	DeviceName    string `json:"device_name"`
	UsageCount    int64  `json:"usage_count"`
	TotalDuration int64  `json:"total_duration"`
}

// DeviceUsageTimeslot counts how often a device was started at a given time.
type DeviceUsageTimeslot struct {
	DeviceName string `json:"device_name"`
	UsageStart string `json:"usage_start"`
	UsageCount int64  `json:"usage_count"`
}

// HouseAreaUsage correlates device usage with the owner's house area.
// Users sharing the same house area value fall into the same group.
type HouseAreaUsage struct {
	HouseArea   float64 `json:"house_area"`
	DeviceName  string  `json:"device_name"`
	UsageCount  int64   `json:"usage_count"`
	AvgDuration float64 `json:"avg_duration"`
}
