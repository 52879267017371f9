package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/repository"
)

type reportService struct {
	sessions repository.SessionRepo
	breaks   repository.BreakRepo
}

// NewReportService creates the read-only report layer consumed by
// exporters. It only surfaces finalized (ended) sessions.
func NewReportService(sessions repository.SessionRepo, breaks repository.BreakRepo) ReportService {
	return &reportService{sessions: sessions, breaks: breaks}
}

func (s *reportService) Range(ctx context.Context, from, to string) (*RangeReport, error) {
	if _, err := time.Parse(domain.DateLayout, from); err != nil {
		return nil, fmt.Errorf("invalid from date %q: %w", from, err)
	}
	if _, err := time.Parse(domain.DateLayout, to); err != nil {
		return nil, fmt.Errorf("invalid to date %q: %w", to, err)
	}
	if from > to {
		return nil, fmt.Errorf("from date %s is after to date %s", from, to)
	}

	all, err := s.sessions.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &RangeReport{From: from, To: to}
	for _, session := range all {
		if session.Status != domain.StatusEnded {
			continue
		}
		report.Sessions = append(report.Sessions, session)

		breaks, err := s.breaks.ListBySession(ctx, session.Date)
		if err != nil {
			return nil, err
		}
		report.Breaks = append(report.Breaks, breaks...)

		day := domain.DailyStats{
			Date:            session.Date,
			WorkSeconds:     session.WorkSeconds,
			BreakSeconds:    session.BreakSeconds,
			OvertimeSeconds: session.OvertimeSeconds,
			BreaksCount:     len(breaks),
			FirstStart:      session.StartTime,
			LastEnd:         session.EndTime,
		}
		for _, b := range breaks {
			switch b.Type {
			case domain.BreakLunch:
				day.LunchBreaks++
			case domain.BreakCoffee:
				day.CoffeeBreaks++
			case domain.BreakGeneral:
				day.GeneralBreaks++
			}
		}
		report.Days = append(report.Days, day)

		report.TotalWorkSeconds += session.WorkSeconds
		report.TotalBreakSeconds += session.BreakSeconds
		report.TotalOvertimeSeconds += session.OvertimeSeconds
	}

	return report, nil
}
