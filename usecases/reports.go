package usecases

import (
	"smarthome-server/entities"
	"smarthome-server/repositories"
)

type ReportUseCase struct {
	repo repositories.ReportRepository
}

func NewReportUseCase(r repositories.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: r}
}

func (uc *ReportUseCase) UsageSummary() ([]entities.DeviceUsageSummary, error) {
	return uc.repo.UsageSummary()
}

func (uc *ReportUseCase) UsageTimeDistribution() ([]entities.DeviceUsageTimeslot, error) {
	return uc.repo.UsageTimeDistribution()
}

func (uc *ReportUseCase) UsageByHouseArea() ([]entities.HouseAreaUsage, error) {
	return uc.repo.UsageByHouseArea()
}
