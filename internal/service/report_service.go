package service

import (
	"go-pos-backoffice/internal/repository"

	"github.com/google/uuid"
)

type ReportService interface {
	GetDashboardStats(tenantID uuid.UUID) (*repository.DashboardStats, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(rRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: rRepo}
}

func (s *reportService) GetDashboardStats(tenantID uuid.UUID) (*repository.DashboardStats, error) {
	return s.reportRepo.GetDashboardStats(tenantID)
}
