package clinical

// ===============================
// Clinical payloads
// ===============================

// EyePair holds a measurement taken per eye (OD = right, OS = left).
type EyePair struct {
	OD string `json:"od"`
	OS string `json:"os"`
}

// Record is the structured clinical payload captured during a visit.
// Fields are optional; an empty Record is a valid (if useless) encounter.
type Record struct {
	ChiefComplaint string  `json:"chief_complaint"`
	Vision         EyePair `json:"vision"`
	IOP            EyePair `json:"iop"`
	SlitLamp       string  `json:"slit_lamp"`
	Fundus         string  `json:"fundus"`
	Diagnosis      string  `json:"diagnosis"`
	Advice         string  `json:"advice"`
}

// IsEmpty reports whether nothing was recorded at all.
func (r Record) IsEmpty() bool {
	return r == Record{}
}
