// Package export flattens extraction results into tabular rows and writes them
// as CSV or XLSX.
package export

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/domain"
)

// Row is one exported line: a single field or statement of the document.
type Row struct {
	Section        string
	Field          string
	Value          string
	Detail         string
	SourceSegments []int
	Confidence     *float64
}

// columns defines the header row shared by every format.
var columns = []string{
	"Section",
	"Field",
	"Value",
	"Detail",
	"Source Segments",
	"Confidence",
}

// Rows flattens result in document order. Absent fields produce no row.
func Rows(result *domain.ExtractionResult) []Row {
	if result == nil {
		return nil
	}
	doc := &result.Document
	var rows []Row

	rows = appendScalars(rows, "visit", doc.Visit)
	rows = appendScalars(rows, "referral", doc.Referral)
	rows = appendScalars(rows, "ambulance", doc.Ambulance)

	if doc.Diagnosis != nil {
		for _, item := range doc.Diagnosis.Items {
			rows = append(rows, Row{
				Section:        "diagnosis",
				Field:          "diagnosis",
				Value:          item.Diagnosis,
				Detail:         diagnosisDetail(item),
				SourceSegments: item.SourceSegments,
			})
		}
	}
	if doc.VitalSigns != nil {
		for _, item := range doc.VitalSigns.Items {
			rows = append(rows, Row{
				Section:        "vital_signs",
				Field:          item.Name,
				Value:          item.Value,
				SourceSegments: item.SourceSegments,
			})
		}
	}
	rows = appendScalars(rows, "body_measurements", doc.BodyMeasurements)

	if doc.ClinicalNotes != nil {
		for _, group := range doc.ClinicalNotes.Groups() {
			for _, st := range group.Statements {
				rows = append(rows, Row{
					Section:        "clinical_notes",
					Field:          group.Field,
					Value:          st.Statement,
					SourceSegments: st.SourceSegments,
				})
			}
		}
	}
	if doc.Treatment != nil {
		for _, item := range doc.Treatment.Items {
			rows = append(rows, Row{
				Section:        "treatment",
				Field:          string(item.Type),
				Value:          item.Description,
				SourceSegments: item.SourceSegments,
			})
		}
	}
	rows = appendScalars(rows, "certificates", doc.Certificates)
	rows = appendScalars(rows, "restrictions", doc.Restrictions)

	for _, a := range doc.Allergies {
		rows = append(rows, Row{
			Section:        "allergies",
			Field:          string(a.Type),
			Value:          a.Description,
			Detail:         deref(a.Date),
			SourceSegments: a.SourceSegments,
		})
	}
	for _, v := range doc.Vaccinations {
		rows = append(rows, Row{
			Section:        "vaccinations",
			Field:          "name",
			Value:          v.Name,
			Detail:         deref(v.Date),
			SourceSegments: v.SourceSegments,
		})
	}
	for _, ref := range result.References {
		rows = append(rows, Row{
			Section:        "references",
			Field:          ref.FieldName,
			Value:          ref.Value.String(),
			SourceSegments: ref.SourceSegments,
			Confidence:     ref.Confidence,
		})
	}
	return rows
}

// record renders r as the string cells of one line.
func (r Row) record() []string {
	return []string{
		r.Section,
		r.Field,
		r.Value,
		r.Detail,
		formatSegments(r.SourceSegments),
		formatConfidence(r.Confidence),
	}
}

func diagnosisDetail(item domain.DiagnosisItem) string {
	var parts []string
	if item.DiagnosisCode != nil && *item.DiagnosisCode != "" {
		parts = append(parts, *item.DiagnosisCode)
	}
	if item.DiagnosisCertainty != nil {
		parts = append(parts, item.DiagnosisCertainty.Label())
	}
	return strings.Join(parts, " ")
}

// appendScalars adds one row per set field of a struct made of optional
// scalar pointers, named by the field's JSON key.
func appendScalars(rows []Row, section string, v any) []Row {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return rows
	}
	rv = rv.Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		fv := rv.Field(i)
		if fv.Kind() != reflect.Ptr || fv.IsNil() {
			continue
		}
		rows = append(rows, Row{
			Section: section,
			Field:   jsonName(rt.Field(i)),
			Value:   formatScalar(fv.Elem()),
		})
	}
	return rows
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" {
		return f.Name
	}
	return name
}

func formatScalar(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return formatBool(v.Bool())
	case reflect.Int, reflect.Int64, reflect.Int32:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Float64, reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return ""
	}
}

func formatBool(v bool) string {
	if v {
		return "Taip"
	}
	return "Ne"
}

func formatSegments(segments []int) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ", ")
}

func formatConfidence(c *float64) string {
	if c == nil {
		return ""
	}
	return strconv.FormatFloat(*c, 'f', 2, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
