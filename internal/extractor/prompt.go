package extractor

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/domain"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/schema"
)

const systemPromptHead = `<context>
You are a medical named entity recognition system for Lithuanian healthcare. You read doctor-patient conversation transcripts and extract structured data for the E025 "Ambulatorinio apsilankymo aprašymas" (outpatient visit description) document.
</context>

<task>
Extract every medical entity from the transcript. Every extracted fact must point to the index of the segment it came from.
</task>

<constraints>
DO NOT:
- Infer or assume information that is not explicitly stated
- Merge several facts into one statement
- Invent diagnoses, medications or values
- Emit empty arrays or null fields
- Add explanations or markdown formatting
- Duplicate information: a planned test belongs ONLY in tests_consultations_plan, NEVER in treatment
- Use types that the schema does not list

DO:
- Extract each symptom, finding or fact as its own statement
- Give every extracted item a source_segments array
- Keep clinical detail (severity, location, timing)
- Keep explicitly stated negative findings ("nėra kosulio")
- Use Lithuanian medical terminology
</constraints>

<output_schema>
`

const systemPromptTail = `
</output_schema>

<field_definitions>
vital_signs.items:
  - Temperatūra: "36.6°C"
  - Kraujospūdis: "120/80 mmHg"
  - Pulsas: "72 k/min"
  - Saturacija: "98%"
  - Kvėpavimo dažnis: "16 k/min"
  - Alkoholio kiekis: "0.0 ‰"

allergies.type:
  - vaistai: drug allergies
  - maistas: food allergies
  - kita: environmental (pollen, dust, animals)

diagnosis:
  - diagnosis_certainty: "+" confirmed, "-" excluded, "0" suspected

treatment.type:
  - medication: drugs with dosage
  - referral: specialist consultations
  - recommendation: lifestyle advice, follow-up
  - prescription: e-prescriptions
  - non_medication: procedures, therapy

complaints_anamnesis:
  - Current symptoms and their characteristics
  - Chronic conditions, prefixed "Lėtinė liga:"
  - Past surgeries, prefixed "Operacija:"
  - Family history, prefixed "Šeimos anamnezė:"
  - Explicitly stated negative findings

objective_condition:
  - Physical examination findings by body system
  - Format: "[System]: [finding]"

tests_consultations_plan:
  - Planned laboratory tests (blood, urine, CRB and similar)
  - Planned imaging (X-ray, MRI, ultrasound)
  - Future specialist consultations
  - Planned tests never go into "treatment"

performed_tests_consultations:
  - Results of tests performed during the visit
  - Earlier test results that were mentioned
</field_definitions>

<extraction_rules>
1. ONE FACT PER STATEMENT
   Bad: "Skauda gerklę ir galvą, silpnumas"
   Good: three statements "Skauda gerklę", "Skauda galvą", "Jaučia silpnumą"

2. KEEP STATED DETAILS
   Bad: "Skauda gerklę"
   Good: "Skauda gerklę, ypač ryjant, kaip pjauna peiliu"

3. LIST EVERY SUPPORTING SEGMENT
   "source_segments": [3, 5, 7]

4. QUESTION AND ANSWER PAIRS
   A short answer such as "Ne" or "Taip" means nothing without the question it answers.
   When a fact comes from a question and its answer, source_segments MUST contain the index of the question AND the index of the answer.
   Example:
     [10] Gydytojas: "Ar karščiuojate?"
     [11] Pacientas: "Ne."
     Fact: "Nėra karščiavimo" -> source_segments: [10, 11]
</extraction_rules>
`

const userPromptInstruction = "Extract all medical entities. Return only valid JSON adhering to the provided output_schema."

var (
	systemPromptOnce sync.Once
	systemPrompt     string
	systemPromptErr  error
)

// SystemPrompt returns the fixed extraction instructions with the canonical
// document schema embedded.
func SystemPrompt() (string, error) {
	systemPromptOnce.Do(func() {
		doc, err := schema.Document()
		if err != nil {
			systemPromptErr = fmt.Errorf("building document schema: %w", err)
			return
		}
		pretty, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			systemPromptErr = fmt.Errorf("encoding document schema: %w", err)
			return
		}
		systemPrompt = systemPromptHead + string(pretty) + systemPromptTail
	})
	return systemPrompt, systemPromptErr
}

// BuildUserPrompt lists the segments as "[i] time | speaker: text" lines
// inside <transcript> tags, followed by the output instruction.
func BuildUserPrompt(segments []domain.TranscriptSegment) string {
	var b strings.Builder
	b.WriteString("<transcript>\n")
	for i, seg := range segments {
		fmt.Fprintf(&b, "[%d] %s | %s: %s\n", i, seg.Time, seg.Speaker, seg.Text)
	}
	b.WriteString("</transcript>\n\n")
	b.WriteString(userPromptInstruction)
	return b.String()
}
