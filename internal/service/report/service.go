// Package report serializes collections into downloadable export documents.
package report

import (
	"context"

	"github.com/medidash/clinic-api/internal/repository"
	apperrors "github.com/medidash/clinic-api/pkg/errors"
)

// Export is a named document ready to be streamed as an attachment.
type Export struct {
	Filename    string
	ContentType string
	Body        string
}

// ErrPDFNotImplemented is what the PDF entry point always answers with.
var ErrPDFNotImplemented = apperrors.NewExport("PDF export stub - integrate a PDF renderer")

var (
	patientColumns     = []string{"id", "name", "age", "gender", "phone", "email", "notes", "createdAt"}
	appointmentColumns = []string{"id", "patientId", "title", "doctor", "datetime", "status"}
)

type ReportService interface {
	ExportPatients(ctx context.Context) (*Export, error)
	ExportAppointments(ctx context.Context) (*Export, error)
	ExportPDF(ctx context.Context) (*Export, error)
}

type Service struct {
	patients     repository.PatientRepository
	appointments repository.AppointmentRepository
}

func NewService(patients repository.PatientRepository, appointments repository.AppointmentRepository) *Service {
	return &Service{patients: patients, appointments: appointments}
}

func (s *Service) ExportPatients(ctx context.Context) (*Export, error) {
	patients := s.patients.List(ctx)
	rows := make([][]string, 0, len(patients))
	for _, p := range patients {
		rows = append(rows, []string{
			Stringify(p.ID),
			Stringify(p.Name),
			Stringify(p.Age),
			Stringify(p.Gender),
			Stringify(p.Phone),
			Stringify(p.Email),
			Stringify(p.Notes),
			Stringify(p.CreatedAt),
		})
	}

	body, err := MarshalCSV(patientColumns, rows)
	if err != nil {
		return nil, err
	}
	return &Export{Filename: "patients.csv", ContentType: "text/csv", Body: body}, nil
}

func (s *Service) ExportAppointments(ctx context.Context) (*Export, error) {
	appointments := s.appointments.List(ctx)
	rows := make([][]string, 0, len(appointments))
	for _, a := range appointments {
		rows = append(rows, []string{
			Stringify(a.ID),
			Stringify(a.PatientID),
			Stringify(a.Title),
			Stringify(a.Doctor),
			Stringify(a.Datetime),
			Stringify(string(a.Status)),
		})
	}

	body, err := MarshalCSV(appointmentColumns, rows)
	if err != nil {
		return nil, err
	}
	return &Export{Filename: "appointments.csv", ContentType: "text/csv", Body: body}, nil
}

// ExportPDF never produces a file.
func (s *Service) ExportPDF(_ context.Context) (*Export, error) {
	return nil, ErrPDFNotImplemented
}
