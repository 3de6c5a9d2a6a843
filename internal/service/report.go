package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/excel"
	"rentacar-backend/internal/pdf"
	"rentacar-backend/internal/repository"
)

const rankingSize = 5

type reportService struct {
	reportRepo repository.ReportRepository
	excelGen   *excel.Generator
	pdfGen     *pdf.Generator
}

func NewReportService(reportRepo repository.ReportRepository, excelGen *excel.Generator, pdfGen *pdf.Generator) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		excelGen:   excelGen,
		pdfGen:     pdfGen,
	}
}

func (s *reportService) VehicleRanking(ctx context.Context) ([]domain.VehicleRankingRow, error) {
	ranking, err := s.reportRepo.VehicleRanking(ctx, rankingSize)
	if err != nil {
		return nil, storeErr("vehicle ranking", err)
	}
	return ranking, nil
}

func (s *reportService) MonthlyRevenue(ctx context.Context, year int32) ([]domain.MonthlyRevenueRow, error) {
	if year < 2000 || year > 2100 {
		return nil, ErrInvalidInput
	}
	revenue, err := s.reportRepo.MonthlyRevenue(ctx, year)
	if err != nil {
		return nil, storeErr("monthly revenue", err)
	}
	return revenue, nil
}

func (s *reportService) RentalsByPeriod(ctx context.Context, from, to time.Time) ([]domain.PeriodRentalRow, error) {
	if !to.After(from) {
		return nil, ErrInvalidWindow
	}
	rows, err := s.reportRepo.RentalsByPeriod(ctx, from, to)
	if err != nil {
		return nil, storeErr("period report", err)
	}
	return rows, nil
}

func (s *reportService) ClientHistory(ctx context.Context, clientID int32) ([]domain.ClientHistoryRow, error) {
	history, err := s.reportRepo.ClientHistory(ctx, clientID)
	if err != nil {
		return nil, storeErr("client history", err)
	}
	return history, nil
}

func (s *reportService) ExportPeriod(ctx context.Context, from, to time.Time, format string) ([]byte, string, string, error) {
	rows, err := s.RentalsByPeriod(ctx, from, to)
	if err != nil {
		return nil, "", "", err
	}

	stamp := uuid.New().String()[:8]
	switch format {
	case "xlsx":
		content, err := s.excelGen.Generate(from, to, rows)
		if err != nil {
			return nil, "", "", fmt.Errorf("excel export: %w", err)
		}
		name := fmt.Sprintf("rentals_%s_%s_%s.xlsx", from.Format("20060102"), to.Format("20060102"), stamp)
		return content, name, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	case "pdf":
		content, err := s.pdfGen.Generate(from, to, rows)
		if err != nil {
			return nil, "", "", fmt.Errorf("pdf export: %w", err)
		}
		name := fmt.Sprintf("rentals_%s_%s_%s.pdf", from.Format("20060102"), to.Format("20060102"), stamp)
		return content, name, "application/pdf", nil
	default:
		return nil, "", "", ErrInvalidInput
	}
}
