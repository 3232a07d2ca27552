package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestTranscriptInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"no segments", `{"transcript": []}`, "at least one segment"},
		{"missing transcript", `{}`, "at least one segment"},
		{"missing time", `{"transcript": [{"speaker": "Pacientas", "text": "Skauda galvą"}]}`, "segment 0 is missing time"},
		{"null speaker", `{"transcript": [{"time": "00:00", "speaker": null, "text": "Labas"}]}`, "segment 0 is missing speaker"},
		{"missing speaker and text", `{"transcript": [
			{"time": "00:00", "speaker": "Gydytojas", "text": "Labas"},
			{"time": "00:02"}]}`, "segment 1 is missing speaker, text"},
		{"valid", `{"transcript": [{"time": "00:00", "speaker": "Gydytojas", "text": "Labas"}]}`, ""},
		{"empty text allowed", `{"transcript": [
			{"time": "00:00", "speaker": "Gydytojas", "text": "Kuo skundžiatės?"},
			{"time": "00:03", "speaker": "Pacientas", "text": ""}]}`, ""},
		{"blank values allowed", `{"transcript": [{"time": "", "speaker": " ", "text": "  "}]}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in domain.TranscriptInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))

			err := in.Validate()
			if tt.wantErr != "" {
				assert.ErrorIs(t, err, domain.ErrInvalidTranscript)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTranscriptInput_ValidateNil(t *testing.T) {
	var in *domain.TranscriptInput
	assert.ErrorIs(t, in.Validate(), domain.ErrInvalidTranscript)
}

func TestTranscriptSegment_DecodeKeepsValues(t *testing.T) {
	var seg domain.TranscriptSegment
	require.NoError(t, json.Unmarshal([]byte(`{"time": "00:01:23", "speaker": "Gydytojas", "text": "", "extra": 1}`), &seg))

	assert.Equal(t, "00:01:23", seg.Time)
	assert.Equal(t, "Gydytojas", seg.Speaker)
	assert.Empty(t, seg.Text)

	assert.Error(t, json.Unmarshal([]byte(`{"time": 5}`), &seg))
}

func TestReferenceValue_KeepsScalarKinds(t *testing.T) {
	var refs []domain.EntityReference
	raw := `[
		{"field_name":"a","value":"38.5 C","source_segments":[0]},
		{"field_name":"b","value":38,"source_segments":[1]},
		{"field_name":"c","value":38.5,"source_segments":[]},
		{"field_name":"d","value":true,"source_segments":[2],"confidence":0.9}
	]`
	require.NoError(t, json.Unmarshal([]byte(raw), &refs))

	assert.Equal(t, "38.5 C", refs[0].Value.Interface())
	assert.Equal(t, int64(38), refs[1].Value.Interface())
	assert.Equal(t, 38.5, refs[2].Value.Interface())
	assert.Equal(t, true, refs[3].Value.Interface())
	assert.Equal(t, "true", refs[3].Value.String())
	require.NotNil(t, refs[3].Confidence)
	assert.InDelta(t, 0.9, *refs[3].Confidence, 1e-9)

	out, err := json.Marshal(refs[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{"field_name":"b","value":38,"source_segments":[1]}`, string(out))
}

func TestReferenceValue_RejectsComposite(t *testing.T) {
	var ref domain.EntityReference
	err := json.Unmarshal([]byte(`{"field_name":"a","value":{"x":1},"source_segments":[]}`), &ref)
	assert.Error(t, err)
}

func TestExtractionResult_RoundTripIsLossless(t *testing.T) {
	raw := `{
		"document": {
			"visit": {"date": "2024-03-01", "time": "09:30", "status": "darbinis", "consultation_type": "tiesioginis"},
			"diagnosis": {"items": [{"diagnosis": "Ūminis bronchitas", "diagnosis_code": "J20.9", "diagnosis_certainty": "+", "source_segments": [3, 4]}]},
			"vital_signs": {"items": [{"name": "Temperatūra", "value": "38.2 C", "source_segments": [1]}]},
			"body_measurements": {"weight": 72.5, "height": 180},
			"clinical_notes": {"complaints_anamnesis": [{"statement": "Kosulys 3 dienas", "source_segments": [0]}]},
			"treatment": {"items": [{"description": "Paracetamolis 500 mg", "type": "medication", "source_segments": [5]}]},
			"restrictions": {"cannot_drive": false},
			"allergies": [{"type": "vaistai", "description": "Penicilinas", "source_segments": [2]}],
			"vaccinations": [{"name": "Gripo vakcina", "date": "2023-10-10", "source_segments": []}]
		},
		"references": [{"field_name": "vital_signs.temperature", "value": "38.2 C", "source_segments": [1], "confidence": 0.95}]
	}`

	var result domain.ExtractionResult
	require.NoError(t, json.Unmarshal([]byte(raw), &result))

	out, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestExtractionResult_Normalize(t *testing.T) {
	result := domain.ExtractionResult{
		Document: domain.E025Document{
			Diagnosis: &domain.Diagnosis{Items: []domain.DiagnosisItem{
				{Diagnosis: "A", DiagnosisCode: strPtr("null")},
				{Diagnosis: "B", DiagnosisCode: strPtr("None")},
				{Diagnosis: "C", DiagnosisCode: strPtr("")},
				{Diagnosis: "D", DiagnosisCode: strPtr("J45.0")},
			}},
			ClinicalNotes: &domain.ClinicalNotes{Notes: []domain.ClinicalStatement{{Statement: "x"}}},
			Allergies:     []domain.Allergy{{Type: domain.AllergyFood, Description: "Riešutai"}},
		},
	}

	result.Normalize()

	items := result.Document.Diagnosis.Items
	assert.Nil(t, items[0].DiagnosisCode)
	assert.Nil(t, items[1].DiagnosisCode)
	assert.Nil(t, items[2].DiagnosisCode)
	require.NotNil(t, items[3].DiagnosisCode)
	assert.Equal(t, "J45.0", *items[3].DiagnosisCode)
	for _, item := range items {
		assert.NotNil(t, item.SourceSegments)
	}
	assert.NotNil(t, result.Document.ClinicalNotes.Notes[0].SourceSegments)
	assert.NotNil(t, result.Document.Allergies[0].SourceSegments)
	assert.NotNil(t, result.References)

	out, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"references":[]`)
	assert.NotContains(t, string(out), "diagnosis_code\":\"null")
}

func TestExtractionResult_CheckSegments(t *testing.T) {
	result := domain.ExtractionResult{
		Document: domain.E025Document{
			Treatment: &domain.Treatment{Items: []domain.TreatmentItem{
				{Description: "Poilsis", Type: domain.TreatmentRecommendation, SourceSegments: []int{0, 2}},
			}},
		},
		References: []domain.EntityReference{
			{FieldName: "treatment.items", Value: domain.StringValue("Poilsis"), SourceSegments: []int{2}},
		},
	}

	assert.NoError(t, result.CheckSegments(3))

	err := result.CheckSegments(2)
	require.ErrorIs(t, err, domain.ErrInvalidSegmentReference)
	assert.Contains(t, err.Error(), "treatment.items[0]")

	result.References[0].SourceSegments = []int{-1}
	err = result.CheckSegments(3)
	require.ErrorIs(t, err, domain.ErrInvalidSegmentReference)
	assert.Contains(t, err.Error(), "references[0]")
}

func TestDiagnosisCertainty_Label(t *testing.T) {
	assert.Equal(t, "Patvirtinta", domain.CertaintyConfirmed.Label())
	assert.Equal(t, "Atmesta", domain.CertaintyExcluded.Label())
	assert.Equal(t, "Įtariama", domain.CertaintySuspected.Label())
	assert.Empty(t, domain.DiagnosisCertainty("?").Label())
}
