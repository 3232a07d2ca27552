package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func sampleResult() *domain.ExtractionResult {
	return &domain.ExtractionResult{
		Document: domain.E025Document{
			Visit: &domain.VisitMetadata{
				Date:      ptr("2025-03-14"),
				Physician: ptr("Dr. Jonas Jonaitis, šeimos gydytojas"),
			},
			Diagnosis: &domain.Diagnosis{Items: []domain.DiagnosisItem{{
				Diagnosis:          "Ūminis tonzilitas",
				DiagnosisCode:      ptr("J03.9"),
				DiagnosisCertainty: ptr(domain.CertaintySuspected),
				SourceSegments:     []int{4, 5},
			}}},
			VitalSigns: &domain.VitalSigns{Items: []domain.VitalSignItem{
				{Name: "Temperatūra", Value: "38.2°C", SourceSegments: []int{2}},
			}},
			BodyMeasurements: &domain.BodyMeasurements{Weight: ptr(72.5), Height: ptr(180)},
			ClinicalNotes: &domain.ClinicalNotes{
				ComplaintsAnamnesis: []domain.ClinicalStatement{{Statement: "Skauda gerklę 3 dienas", SourceSegments: []int{1}}},
			},
			Treatment: &domain.Treatment{Items: []domain.TreatmentItem{
				{Description: "Ibuprofenas 400 mg", Type: domain.TreatmentMedication, SourceSegments: []int{6}},
			}},
			Restrictions: &domain.Restrictions{CannotDrive: ptr(false)},
			Allergies: []domain.Allergy{
				{Type: domain.AllergyDrug, Description: "Penicilinas", SourceSegments: []int{3}},
			},
		},
		References: []domain.EntityReference{
			{FieldName: "vital_signs.temperature", Value: domain.StringValue("38.2°C"), SourceSegments: []int{2}, Confidence: ptr(0.9)},
		},
	}
}

func TestRows_DocumentOrder(t *testing.T) {
	rows := Rows(sampleResult())

	sections := make([]string, len(rows))
	for i, r := range rows {
		sections[i] = r.Section
	}
	assert.Equal(t, []string{
		"visit", "visit",
		"diagnosis",
		"vital_signs",
		"body_measurements", "body_measurements",
		"clinical_notes",
		"treatment",
		"restrictions",
		"allergies",
		"references",
	}, sections)

	assert.Equal(t, Row{Section: "visit", Field: "date", Value: "2025-03-14"}, rows[0])
	assert.Equal(t, "J03.9 Įtariama", rows[2].Detail)
	assert.Equal(t, "72.5", rows[4].Value)
	assert.Equal(t, "height", rows[5].Field)
	assert.Equal(t, "complaints_anamnesis", rows[6].Field)
	assert.Equal(t, "medication", rows[7].Field)
	assert.Equal(t, "Ne", rows[8].Value)
}

func TestRows_Nil(t *testing.T) {
	assert.Nil(t, Rows(nil))
	assert.Empty(t, Rows(&domain.ExtractionResult{}))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Rows(sampleResult())))

	body := buf.Bytes()
	require.True(t, len(body) > 3)
	assert.Equal(t, BOM, body[:3])

	records, err := csv.NewReader(bytes.NewReader(body[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 12)
	assert.Equal(t, columns, records[0])
	assert.Equal(t, []string{"diagnosis", "diagnosis", "Ūminis tonzilitas", "J03.9 Įtariama", "4, 5", ""}, records[3])
	assert.Equal(t, "0.90", records[11][5])
}

func TestWriteCSV_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[3:])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, Rows(sampleResult())))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, sheetName, f.GetSheetName(0))
	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 12)
	assert.Equal(t, columns, rows[0])
	assert.Equal(t, "Temperatūra", rows[4][1])
	assert.Equal(t, "0.9", rows[11][5])
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, domain.ExportFormat("pdf"), nil)

	assert.ErrorIs(t, err, domain.ErrUnsupportedExportFormat)
	assert.Zero(t, buf.Len())
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Vizitas 2025", "Vizitas_2025"},
		{"a//b??c", "a_b_c"},
		{"__trim__", "trim"},
		{"ąčę", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "visit_2025-03-14.xlsx", BuildFilename("visit", domain.ExportXLSX, now))
	assert.Equal(t, "e025_2025-03-14.csv", BuildFilename("", domain.ExportCSV, now))
}
