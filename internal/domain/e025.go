package domain

// E025Document is the Lithuanian outpatient visit description (form E025).
// Every section is optional; absent sections are omitted from JSON.
type E025Document struct {
	Visit            *VisitMetadata    `json:"visit,omitempty" jsonschema_description:"Vizito metaduomenys (data, laikas, gydytojas)"`
	Referral         *Referral         `json:"referral,omitempty" jsonschema_description:"Siuntimo informacija"`
	Ambulance        *Ambulance        `json:"ambulance,omitempty" jsonschema_description:"GMP (greitosios) informacija"`
	Diagnosis        *Diagnosis        `json:"diagnosis,omitempty" jsonschema_description:"Diagnozė (pagrindinė, kodai, tikrumas)"`
	VitalSigns       *VitalSigns       `json:"vital_signs,omitempty" jsonschema_description:"Gyvybiniai rodikliai (temperatūra, spaudimas, pulsas ir kt.)"`
	BodyMeasurements *BodyMeasurements `json:"body_measurements,omitempty" jsonschema_description:"Kūno matavimai (svoris, ūgis, apimtys)"`
	ClinicalNotes    *ClinicalNotes    `json:"clinical_notes,omitempty" jsonschema_description:"Klinikiniai užrašai (nusiskundimai, objektyvi būklė, tyrimų planas)"`
	Treatment        *Treatment        `json:"treatment,omitempty" jsonschema_description:"Gydymo informacija (vaistai, rekomendacijos)"`
	Certificates     *Certificates     `json:"certificates,omitempty" jsonschema_description:"Pažymos ir nedarbingumo dokumentai"`
	Restrictions     *Restrictions     `json:"restrictions,omitempty" jsonschema_description:"Apribojimai (vairavimas, ginklai)"`
	Allergies        []Allergy         `json:"allergies,omitempty" jsonschema_description:"Žinomos alergijos"`
	Vaccinations     []Vaccination     `json:"vaccinations,omitempty" jsonschema_description:"Atlikti skiepai"`
}

// VisitMetadata holds when, by whom and how the visit took place.
type VisitMetadata struct {
	Date             *string           `json:"date,omitempty" jsonschema:"format=date" jsonschema_description:"Apsilankymo data"`
	Time             *string           `json:"time,omitempty" jsonschema:"pattern=^[0-9]{2}:[0-9]{2}$" jsonschema_description:"Apsilankymo laikas VV:MM"`
	RecordNumber     *string           `json:"record_number,omitempty" jsonschema_description:"Įrašo numeris"`
	Status           *RecordStatus     `json:"status,omitempty" jsonschema:"enum=darbinis,enum=galutinis" jsonschema_description:"Įrašo būsena"`
	Physician        *string           `json:"physician,omitempty" jsonschema_description:"Gydytojo vardas, pavardė ir pareigos"`
	HelpType         *HelpType         `json:"help_type,omitempty" jsonschema:"enum=butinoji,enum=planine,enum=kita" jsonschema_description:"Pagalbos tipas"`
	ConsultationType *ConsultationType `json:"consultation_type,omitempty" jsonschema:"enum=tiesioginis,enum=nuotolinis,enum=kitas" jsonschema_description:"Konsultacijos pobūdis"`
	ServiceMethod    *string           `json:"service_method,omitempty" jsonschema_description:"Aptarnavimo ypatumai"`
}

// Referral describes the referral the patient arrived with.
type Referral struct {
	ArrivedWithReferral  *bool   `json:"arrived_with_referral,omitempty" jsonschema_description:"Ar atvyko su siuntimu"`
	ReferringInstitution *string `json:"referring_institution,omitempty" jsonschema_description:"Siuntusios įstaigos pavadinimas"`
	ReferringPhysician   *string `json:"referring_physician,omitempty" jsonschema_description:"Siuntusio gydytojo vardas, pavardė"`
	ReferralDiagnosis    *string `json:"referral_diagnosis,omitempty" jsonschema_description:"Siuntimo diagnozė su TLK-10-AM kodu"`
}

// Ambulance describes an arrival by emergency medical services.
type Ambulance struct {
	ArrivedByAmbulance   *bool   `json:"arrived_by_ambulance,omitempty" jsonschema_description:"Ar atvežtas GMP"`
	AmbulanceInstitution *string `json:"ambulance_institution,omitempty" jsonschema_description:"GMP įstaigos pavadinimas"`
	AmbulanceDiagnosis   *string `json:"ambulance_diagnosis,omitempty" jsonschema_description:"GMP nustatyta diagnozė"`
}

// Diagnosis groups the diagnoses established during the visit.
type Diagnosis struct {
	Items []DiagnosisItem `json:"items,omitempty" jsonschema_description:"Diagnozių sąrašas su nuorodomis į transkripciją"`
}

// DiagnosisItem is a single diagnosis with its transcript evidence.
type DiagnosisItem struct {
	Diagnosis          string              `json:"diagnosis" jsonschema_description:"Diagnozė lietuvių kalba"`
	DiagnosisCode      *string             `json:"diagnosis_code,omitempty" jsonschema_description:"TLK-10-AM kodas, pvz.: J45.0"`
	DiagnosisCertainty *DiagnosisCertainty `json:"diagnosis_certainty,omitempty" jsonschema:"enum=+,enum=-,enum=0" jsonschema_description:"Tikrumas: '+' patvirtinta, '-' atmesta, '0' įtariama"`
	SourceSegments     []int               `json:"source_segments" jsonschema_description:"Transkripcijos segmentų indeksai"`
}

// VitalSigns groups measured vital signs.
type VitalSigns struct {
	Items []VitalSignItem `json:"items,omitempty" jsonschema_description:"Gyvybinių rodiklių sąrašas su nuorodomis į transkripciją"`
}

// VitalSignItem is one measurement, value carried with its units.
type VitalSignItem struct {
	Name           string `json:"name" jsonschema_description:"Rodiklio pavadinimas"`
	Value          string `json:"value" jsonschema_description:"Rodiklio reikšmė su vienetais"`
	SourceSegments []int  `json:"source_segments" jsonschema_description:"Transkripcijos segmentų indeksai"`
}

// BodyMeasurements holds anthropometric values.
type BodyMeasurements struct {
	Weight             *float64 `json:"weight,omitempty" jsonschema:"minimum=1,maximum=300" jsonschema_description:"Kūno svoris kg"`
	Height             *int     `json:"height,omitempty" jsonschema:"minimum=50,maximum=250" jsonschema_description:"Ūgis cm"`
	BMI                *float64 `json:"bmi,omitempty" jsonschema:"minimum=10,maximum=60" jsonschema_description:"Kūno masės indeksas kg/m². Norma: 18.5-24.9"`
	ChestCircumference *int     `json:"chest_circumference,omitempty" jsonschema_description:"Krūtinės apimtis cm"`
	HipCircumference   *int     `json:"hip_circumference,omitempty" jsonschema_description:"Klubų apimtis cm"`
	WaistCircumference *int     `json:"waist_circumference,omitempty" jsonschema_description:"Juosmens apimtis cm"`
	HeadCircumference  *int     `json:"head_circumference,omitempty" jsonschema_description:"Galvos apimtis cm"`
}

// ClinicalNotes holds the free-text parts of E025 split into statements.
type ClinicalNotes struct {
	ComplaintsAnamnesis         []ClinicalStatement `json:"complaints_anamnesis,omitempty" jsonschema_description:"Nusiskundimai ir anamnezė - atskiri teiginiai su nuorodomis"`
	ObjectiveCondition          []ClinicalStatement `json:"objective_condition,omitempty" jsonschema_description:"Objektyvus būklės įvertinimas - atskiri teiginiai su nuorodomis"`
	TestsConsultationsPlan      []ClinicalStatement `json:"tests_consultations_plan,omitempty" jsonschema_description:"Planuojami tyrimai ir konsultacijos - atskiri teiginiai su nuorodomis"`
	PerformedTestsConsultations []ClinicalStatement `json:"performed_tests_consultations,omitempty" jsonschema_description:"Atliktų tyrimų rezultatai - atskiri teiginiai su nuorodomis"`
	ConditionOnDischarge        []ClinicalStatement `json:"condition_on_discharge,omitempty" jsonschema_description:"Būklė konsultacijos pabaigoje - atskiri teiginiai su nuorodomis"`
	Notes                       []ClinicalStatement `json:"notes,omitempty" jsonschema_description:"Papildoma informacija - atskiri teiginiai su nuorodomis"`
}

// ClinicalStatement is one atomic clinical fact.
type ClinicalStatement struct {
	Statement      string `json:"statement" jsonschema_description:"Vienas klinikinis teiginys"`
	SourceSegments []int  `json:"source_segments" jsonschema_description:"Transkripcijos segmentų indeksai, iš kurių išgautas teiginys"`
}

// Treatment groups prescribed and recommended actions.
type Treatment struct {
	Items []TreatmentItem `json:"items,omitempty" jsonschema_description:"Gydymo veiksmų sąrašas su nuorodomis į transkripciją"`
}

// TreatmentItem is one treatment action.
type TreatmentItem struct {
	Description    string        `json:"description" jsonschema_description:"Gydymo aprašymas"`
	Type           TreatmentType `json:"type" jsonschema:"enum=medication,enum=non_medication,enum=prescription,enum=referral,enum=recommendation" jsonschema_description:"Gydymo tipas"`
	SourceSegments []int         `json:"source_segments" jsonschema_description:"Transkripcijos segmentų indeksai"`
}

// Certificates records certificates issued during the visit.
type Certificates struct {
	DisabilityCertificate *bool   `json:"disability_certificate,omitempty" jsonschema_description:"Ar išduotas nedarbingumo pažymėjimas"`
	MaternityCertificate  *bool   `json:"maternity_certificate,omitempty" jsonschema_description:"Ar išduotas nėštumo/gimdymo pažymėjimas"`
	MedicalCertificate    *bool   `json:"medical_certificate,omitempty" jsonschema_description:"Ar išduota medicininė pažyma (094/a)"`
	DisabilityNumber      *string `json:"disability_number,omitempty" jsonschema_description:"Pažymėjimo numeris"`
	DisabilityStartDate   *string `json:"disability_start_date,omitempty" jsonschema:"format=date" jsonschema_description:"Nedarbingumo pradžios data"`
	DisabilityEndDate     *string `json:"disability_end_date,omitempty" jsonschema:"format=date" jsonschema_description:"Nedarbingumo pabaigos data"`
	DisabilityDescription *string `json:"disability_description,omitempty" jsonschema_description:"Nedarbingumo priežasties aprašymas"`
}

// Restrictions records driving and weapon restrictions.
type Restrictions struct {
	CannotDrive     *bool   `json:"cannot_drive,omitempty" jsonschema_description:"Draudimas vairuoti"`
	CannotDriveDate *string `json:"cannot_drive_date,omitempty" jsonschema:"format=date" jsonschema_description:"Draudimo vairuoti data"`
	CannotUseWeapon *bool   `json:"cannot_use_weapon,omitempty" jsonschema_description:"Draudimas naudoti ginklą"`
}

// Allergy is a known allergy to a drug, food or other substance.
type Allergy struct {
	Type           AllergyType `json:"type" jsonschema:"enum=vaistai,enum=maistas,enum=kita" jsonschema_description:"Alergijos tipas"`
	Description    string      `json:"description" jsonschema_description:"Alergeno aprašymas"`
	Date           *string     `json:"date,omitempty" jsonschema:"format=date" jsonschema_description:"Nustatymo data"`
	SourceSegments []int       `json:"source_segments" jsonschema_description:"Transkripcijos segmentų indeksai"`
}

// Vaccination is an administered vaccine.
type Vaccination struct {
	Name           string  `json:"name" jsonschema_description:"Skiepo pavadinimas | vakcinos pavadinimas"`
	Date           *string `json:"date,omitempty" jsonschema:"format=date" jsonschema_description:"Skiepijimo data"`
	SourceSegments []int   `json:"source_segments" jsonschema_description:"Transkripcijos segmentų indeksai"`
}
