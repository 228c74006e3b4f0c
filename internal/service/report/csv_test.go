package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/medidash/clinic-api/pkg/errors"
)

func TestMarshalCSVQuotesAndEscapes(t *testing.T) {
	body, err := MarshalCSV(
		[]string{"name", "stock"},
		[][]string{
			{"A", "5"},
			{"B", `He said "hi"`},
		},
	)
	require.NoError(t, err)

	want := "name,stock\n" +
		`"A","5"` + "\n" +
		`"B","He said ""hi"""`
	assert.Equal(t, want, body)
}

func TestMarshalCSVEmptyIsExportFailure(t *testing.T) {
	_, err := MarshalCSV([]string{"name"}, nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrExport, apperrors.CodeOf(err))
}

func TestStringifyLooseCoercion(t *testing.T) {
	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "text", Stringify("text"))
	assert.Equal(t, "5", Stringify(5))
	assert.Equal(t, "", Stringify(0))
	assert.Equal(t, "12.5", Stringify(12.5))
	assert.Equal(t, "", Stringify(0.0))
	assert.Equal(t, "", Stringify(time.Time{}))

	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-01T10:00:00Z", Stringify(ts))
}

func TestExportPatientsHeaderOrder(t *testing.T) {
	svc := NewService(&fakePatientRepo{}, &fakeAppointmentRepo{})
	doc, err := svc.ExportPatients(context.Background())
	require.NoError(t, err)

	lines := strings.Split(doc.Body, "\n")
	assert.Equal(t, "id,name,age,gender,phone,email,notes,createdAt", lines[0])
	assert.Equal(t, "patients.csv", doc.Filename)
	assert.Equal(t, "text/csv", doc.ContentType)
}

func TestExportAppointmentsEmptyCollection(t *testing.T) {
	svc := NewService(&fakePatientRepo{}, &fakeAppointmentRepo{empty: true})
	_, err := svc.ExportAppointments(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrExport, apperrors.CodeOf(err))
}

func TestExportPDFAlwaysFails(t *testing.T) {
	svc := NewService(&fakePatientRepo{}, &fakeAppointmentRepo{})
	_, err := svc.ExportPDF(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PDF export stub")
}
