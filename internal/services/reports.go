package services

import (
	"context"
	"fmt"

	"attendtrack/internal/domain"
)

// emailDateLayout matches the en-US calendar date used by the document
// renderers.
const emailDateLayout = "1/2/2006"

const emailDateTimeLayout = "1/2/2006, 3:04:05 PM"

type reportService struct {
	eventRepo      domain.EventRepository
	attendanceRepo domain.AttendanceRepository
	renderer       domain.ReportRenderer
	mailer         domain.Mailer
	templates      domain.EmailTemplateRenderer
}

// NewReportService creates a ReportService. The renderer produces the
// downloadable encodings; mailer and templates serve report delivery by
// email.
func NewReportService(
	eventRepo domain.EventRepository,
	attendanceRepo domain.AttendanceRepository,
	renderer domain.ReportRenderer,
	mailer domain.Mailer,
	templates domain.EmailTemplateRenderer,
) domain.ReportService {
	return &reportService{
		eventRepo:      eventRepo,
		attendanceRepo: attendanceRepo,
		renderer:       renderer,
		mailer:         mailer,
		templates:      templates,
	}
}

// project fetches the event and its report rows. A missing event is
// ErrNotFound; an existing event with no logs is a valid zero-row report.
func (s *reportService) project(ctx context.Context, eventID int64) (*domain.Event, []*domain.ReportRow, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get event: %w", err)
	}
	rows, err := s.attendanceRepo.ReportByEvent(ctx, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("report projection: %w", err)
	}
	return event, rows, nil
}

func (s *reportService) Spreadsheet(ctx context.Context, eventID int64) ([]byte, string, error) {
	event, rows, err := s.project(ctx, eventID)
	if err != nil {
		return nil, "", err
	}
	data, err := s.renderer.RenderSpreadsheet(event, rows)
	if err != nil {
		return nil, "", fmt.Errorf("render spreadsheet: %w", err)
	}
	return data, fmt.Sprintf("event_%d_report.xlsx", eventID), nil
}

func (s *reportService) PDF(ctx context.Context, eventID int64) ([]byte, string, error) {
	event, rows, err := s.project(ctx, eventID)
	if err != nil {
		return nil, "", err
	}
	data, err := s.renderer.RenderPDF(event, rows)
	if err != nil {
		return nil, "", fmt.Errorf("render pdf: %w", err)
	}
	return data, fmt.Sprintf("event_%d_report.pdf", eventID), nil
}

func (s *reportService) Email(ctx context.Context, eventID int64, to string) error {
	event, rows, err := s.project(ctx, eventID)
	if err != nil {
		return err
	}

	data := &domain.ReportEmailData{
		EventName: event.Name,
		EventDate: event.Date.Format(emailDateLayout),
	}
	for _, row := range rows {
		data.Rows = append(data.Rows, domain.ReportEmailRow{
			StudentID:      row.StudentID,
			StudentName:    row.StudentName,
			RFID:           row.RFID,
			AttendanceTime: row.AttendanceTime.Format(emailDateTimeLayout),
		})
	}

	subject, html, text, err := s.templates.Render("report", data)
	if err != nil {
		return fmt.Errorf("render report email: %w", err)
	}
	if err := s.mailer.Send(to, subject, html, text); err != nil {
		return fmt.Errorf("send report email: %w", err)
	}
	return nil
}
