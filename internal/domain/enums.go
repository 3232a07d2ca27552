package domain

// RecordStatus is the E025 record state.
type RecordStatus string

const (
	RecordStatusDraft RecordStatus = "darbinis"
	RecordStatusFinal RecordStatus = "galutinis"
)

// HelpType classifies the kind of care provided during the visit.
type HelpType string

const (
	HelpTypeEmergency HelpType = "butinoji"
	HelpTypePlanned   HelpType = "planine"
	HelpTypeOther     HelpType = "kita"
)

// ConsultationType distinguishes in-person from remote consultations.
type ConsultationType string

const (
	ConsultationInPerson ConsultationType = "tiesioginis"
	ConsultationRemote   ConsultationType = "nuotolinis"
	ConsultationOther    ConsultationType = "kitas"
)

// DiagnosisCertainty is the tri-state certainty marker used in E025.
type DiagnosisCertainty string

const (
	CertaintyConfirmed DiagnosisCertainty = "+"
	CertaintyExcluded  DiagnosisCertainty = "-"
	CertaintySuspected DiagnosisCertainty = "0"
)

// Label returns the Lithuanian label shown to clinicians.
func (c DiagnosisCertainty) Label() string {
	switch c {
	case CertaintyConfirmed:
		return "Patvirtinta"
	case CertaintyExcluded:
		return "Atmesta"
	case CertaintySuspected:
		return "Įtariama"
	default:
		return ""
	}
}

// TreatmentType categorizes a treatment item.
type TreatmentType string

const (
	TreatmentMedication     TreatmentType = "medication"
	TreatmentNonMedication  TreatmentType = "non_medication"
	TreatmentPrescription   TreatmentType = "prescription"
	TreatmentReferral       TreatmentType = "referral"
	TreatmentRecommendation TreatmentType = "recommendation"
)

// AllergyType is the allergen category.
type AllergyType string

const (
	AllergyDrug  AllergyType = "vaistai"
	AllergyFood  AllergyType = "maistas"
	AllergyOther AllergyType = "kita"
)

// LLMProvider names a supported extraction backend.
type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderGemini LLMProvider = "gemini"
	ProviderClaude LLMProvider = "claude"
)

// ExportFormat is a tabular export target.
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

// AllowedExportFormats maps export formats to their MIME content type.
var AllowedExportFormats = map[ExportFormat]string{
	ExportCSV:  "text/csv; charset=utf-8",
	ExportXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}
