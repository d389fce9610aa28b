package repositories

import (
	"smarthome-server/db"
	"smarthome-server/entities"
)

type reportGormRepository struct {
	db db.Database
}

func NewReportGormRepository(database db.Database) ReportRepository {
	return &reportGormRepository{db: database}
}

// UsageSummary counts and sums usage per device. Devices without usage
// records are excluded by the inner join.
func (r *reportGormRepository) UsageSummary() ([]entities.DeviceUsageSummary, error) {
	var rows []entities.DeviceUsageSummary
	err := r.db.GetDB().
		Model(&entities.DeviceUsage{}).
		Select("devices.name AS device_name, COUNT(device_usage.id) AS usage_count, SUM(device_usage.duration) AS total_duration").
		Joins("JOIN devices ON devices.id = device_usage.device_id").
		Group("devices.id, devices.name").
		Scan(&rows).Error
	return rows, err
}

// UsageTimeDistribution counts usage records per device and recorded start time.
func (r *reportGormRepository) UsageTimeDistribution() ([]entities.DeviceUsageTimeslot, error) {
	var rows []entities.DeviceUsageTimeslot
	err := r.db.GetDB().
		Model(&entities.DeviceUsage{}).
		Select("devices.name AS device_name, device_usage.usage_start AS usage_start, COUNT(device_usage.id) AS usage_count").
		Joins("JOIN devices ON devices.id = device_usage.device_id").
		Group("devices.id, devices.name, device_usage.usage_start").
		Scan(&rows).Error
	return rows, err
}

// UsageByHouseArea groups usage by the owner's house area value and device
// name. Users with the same house area fall into one group: the report asks
// how usage varies with house size, not per user.
func (r *reportGormRepository) UsageByHouseArea() ([]entities.HouseAreaUsage, error) {
	var rows []entities.HouseAreaUsage
	err := r.db.GetDB().
		Model(&entities.DeviceUsage{}).
		Select("users.house_area AS house_area, devices.name AS device_name, COUNT(device_usage.id) AS usage_count, AVG(device_usage.duration) AS avg_duration").
		Joins("JOIN devices ON devices.id = device_usage.device_id").
		Joins("JOIN users ON users.id = devices.owner_id").
		Group("users.house_area, devices.name").
		Scan(&rows).Error
	return rows, err
}
