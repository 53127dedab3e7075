package service

import (
	"context"
	"fmt"

	"hrdashboard/internal/repository"
)

// DashboardStats are the counters shown on the staff dashboard.
type DashboardStats struct {
	Jobs         int64 `json:"jobs"`
	Applications int64 `json:"applications"`
	Contacts     int64 `json:"contacts"`
}

// DashboardService aggregates record counts.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	jobRepo     repository.JobRepository
	appRepo     repository.ApplicationRepository
	contactRepo repository.ContactRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	jobRepo repository.JobRepository,
	appRepo repository.ApplicationRepository,
	contactRepo repository.ContactRepository,
) DashboardService {
	return &dashboardService{jobRepo: jobRepo, appRepo: appRepo, contactRepo: contactRepo}
}

func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	jobs, err := s.jobRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count jobs: %w", err)
	}
	apps, err := s.appRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}
	contacts, err := s.contactRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count contact messages: %w", err)
	}
	return &DashboardStats{Jobs: jobs, Applications: apps, Contacts: contacts}, nil
}
