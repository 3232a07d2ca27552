package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ExtractionResult is the document extracted from one transcript together with
// field-level references back to the transcript.
type ExtractionResult struct {
	Document   E025Document      `json:"document" jsonschema_description:"The extracted E025 document"`
	References []EntityReference `json:"references" jsonschema_description:"References linking extracted fields to source segments"`
}

// EntityReference ties a dotted field path to the segments it was taken from.
type EntityReference struct {
	FieldName      string         `json:"field_name" jsonschema_description:"Dot-notation path to the field, e.g., 'vital_signs.temperature'"`
	Value          ReferenceValue `json:"value" jsonschema_description:"The extracted value"`
	SourceSegments []int          `json:"source_segments" jsonschema_description:"Indices into the transcript array that support this extraction"`
	Confidence     *float64       `json:"confidence,omitempty" jsonschema:"minimum=0,maximum=1" jsonschema_description:"Confidence score for the extraction (0.0 to 1.0)"`
}

// ReferenceValue holds a scalar JSON value: string, integer, number or boolean.
type ReferenceValue struct {
	v any
}

// StringValue wraps s.
func StringValue(s string) ReferenceValue { return ReferenceValue{v: s} }

// IntValue wraps n.
func IntValue(n int64) ReferenceValue { return ReferenceValue{v: n} }

// NumberValue wraps f.
func NumberValue(f float64) ReferenceValue { return ReferenceValue{v: f} }

// BoolValue wraps b.
func BoolValue(b bool) ReferenceValue { return ReferenceValue{v: b} }

// Interface returns the underlying value (string, int64, float64 or bool), or
// nil when unset.
func (r ReferenceValue) Interface() any { return r.v }

// String renders the value for display.
func (r ReferenceValue) String() string {
	switch v := r.v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(v)
	}
}

// MarshalJSON implements json.Marshaler.
func (r ReferenceValue) MarshalJSON() ([]byte, error) {
	if r.v == nil {
		return []byte("null"), nil
	}
	return json.Marshal(r.v)
}

// UnmarshalJSON implements json.Unmarshaler. Integers keep integer type so a
// round trip does not turn 38 into 38.0.
func (r *ReferenceValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		r.v = nil
	case string, bool:
		r.v = v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			r.v = n
			return nil
		}
		f, err := v.Float64()
		if err != nil {
			return fmt.Errorf("reference value %q: %w", v, err)
		}
		r.v = f
	default:
		return fmt.Errorf("reference value must be a string, number or boolean, got %T", raw)
	}
	return nil
}

// Normalize applies the post-decode cleanup rules: placeholder diagnosis codes
// become absent and every source_segments list is non-nil.
func (r *ExtractionResult) Normalize() {
	if r.References == nil {
		r.References = []EntityReference{}
	}
	for i := range r.References {
		r.References[i].SourceSegments = nonNil(r.References[i].SourceSegments)
	}

	doc := &r.Document
	if doc.Diagnosis != nil {
		for i := range doc.Diagnosis.Items {
			item := &doc.Diagnosis.Items[i]
			item.SourceSegments = nonNil(item.SourceSegments)
			if item.DiagnosisCode != nil && isPlaceholderCode(*item.DiagnosisCode) {
				item.DiagnosisCode = nil
			}
		}
	}
	if doc.VitalSigns != nil {
		for i := range doc.VitalSigns.Items {
			doc.VitalSigns.Items[i].SourceSegments = nonNil(doc.VitalSigns.Items[i].SourceSegments)
		}
	}
	if doc.Treatment != nil {
		for i := range doc.Treatment.Items {
			doc.Treatment.Items[i].SourceSegments = nonNil(doc.Treatment.Items[i].SourceSegments)
		}
	}
	if doc.ClinicalNotes != nil {
		for _, group := range doc.ClinicalNotes.Groups() {
			for i := range group.Statements {
				group.Statements[i].SourceSegments = nonNil(group.Statements[i].SourceSegments)
			}
		}
	}
	for i := range doc.Allergies {
		doc.Allergies[i].SourceSegments = nonNil(doc.Allergies[i].SourceSegments)
	}
	for i := range doc.Vaccinations {
		doc.Vaccinations[i].SourceSegments = nonNil(doc.Vaccinations[i].SourceSegments)
	}
}

// CheckSegments verifies that every referenced segment index lies within a
// transcript of segmentCount segments.
func (r *ExtractionResult) CheckSegments(segmentCount int) error {
	var err error
	r.VisitSegments(func(path string, segments []int) bool {
		for _, idx := range segments {
			if idx < 0 || idx >= segmentCount {
				err = fmt.Errorf("%w: %s references segment %d, transcript has %d segments",
					ErrInvalidSegmentReference, path, idx, segmentCount)
				return false
			}
		}
		return true
	})
	return err
}

// VisitSegments calls fn for every source_segments list in the result, in
// document order. Iteration stops when fn returns false.
func (r *ExtractionResult) VisitSegments(fn func(path string, segments []int) bool) {
	doc := &r.Document
	if doc.Diagnosis != nil {
		for i, item := range doc.Diagnosis.Items {
			if !fn(fmt.Sprintf("diagnosis.items[%d]", i), item.SourceSegments) {
				return
			}
		}
	}
	if doc.VitalSigns != nil {
		for i, item := range doc.VitalSigns.Items {
			if !fn(fmt.Sprintf("vital_signs.items[%d]", i), item.SourceSegments) {
				return
			}
		}
	}
	if doc.ClinicalNotes != nil {
		for _, group := range doc.ClinicalNotes.Groups() {
			for i, st := range group.Statements {
				if !fn(fmt.Sprintf("clinical_notes.%s[%d]", group.Field, i), st.SourceSegments) {
					return
				}
			}
		}
	}
	if doc.Treatment != nil {
		for i, item := range doc.Treatment.Items {
			if !fn(fmt.Sprintf("treatment.items[%d]", i), item.SourceSegments) {
				return
			}
		}
	}
	for i, a := range doc.Allergies {
		if !fn(fmt.Sprintf("allergies[%d]", i), a.SourceSegments) {
			return
		}
	}
	for i, v := range doc.Vaccinations {
		if !fn(fmt.Sprintf("vaccinations[%d]", i), v.SourceSegments) {
			return
		}
	}
	for i, ref := range r.References {
		if !fn(fmt.Sprintf("references[%d]", i), ref.SourceSegments) {
			return
		}
	}
}

// StatementGroup is one named list of clinical statements.
type StatementGroup struct {
	Field      string
	Statements []ClinicalStatement
}

// Groups returns the statement lists in display order. The returned slices
// share backing arrays with n.
func (n *ClinicalNotes) Groups() []StatementGroup {
	return []StatementGroup{
		{Field: "complaints_anamnesis", Statements: n.ComplaintsAnamnesis},
		{Field: "objective_condition", Statements: n.ObjectiveCondition},
		{Field: "tests_consultations_plan", Statements: n.TestsConsultationsPlan},
		{Field: "performed_tests_consultations", Statements: n.PerformedTestsConsultations},
		{Field: "condition_on_discharge", Statements: n.ConditionOnDischarge},
		{Field: "notes", Statements: n.Notes},
	}
}

func isPlaceholderCode(code string) bool {
	switch code {
	case "null", "None", "":
		return true
	}
	return false
}

func nonNil(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
