package services

import (
	"time"

	"github.com/RubensDuarte2025/Julius-rmd/pkg/apperr"
	"github.com/RubensDuarte2025/Julius-rmd/repository"
)

type ReportService struct {
	Repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{Repo: repo}
}

// ParseWindow turns optional from/to query strings (YYYY-MM-DD) into a
// half-open time window. The `to` day is included.
func ParseWindow(fromStr, toStr string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, nil, apperr.InvalidArgument("from must be YYYY-MM-DD")
		}
		from = &t
	}
	if toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return nil, nil, apperr.InvalidArgument("to must be YYYY-MM-DD")
		}
		end := t.AddDate(0, 0, 1)
		to = &end
	}
	return from, to, nil
}

func (s *ReportService) SalesSummary(from, to *time.Time) (repository.SalesSummary, error) {
	return s.Repo.SalesSummary(from, to)
}

func (s *ReportService) ProductsSold(from, to *time.Time) ([]repository.ProductSalesRow, error) {
	return s.Repo.ProductsSold(from, to)
}
