package responses

// ChecklistReadiness is the strict mandatory-document gate result.
type ChecklistReadiness struct {
	MandatoryTotal    int      `json:"mandatory_total"`
	MandatoryComplete int      `json:"mandatory_complete"`
	BlockingDocs      []string `json:"blocking_docs"`
	IsReady           bool     `json:"is_ready"`
}

// IntakeCompleteness is derived from the two intake documents on every call,
// never persisted.
type IntakeCompleteness struct {
	FundAppSections           map[string]bool `json:"fund_app_sections"`
	InterimSummarySections    map[string]bool `json:"interim_summary_sections"`
	FundAppPercent            int             `json:"fund_app_percent"`
	InterimSummaryPercent     int             `json:"interim_summary_percent"`
	FundAppIsComplete         bool            `json:"fund_app_is_complete"`
	InterimSummaryIsComplete  bool            `json:"interim_summary_is_complete"`
	OverallPercent            int             `json:"overall_percent"`
	AllRequiredFieldsComplete bool            `json:"all_required_fields_complete"`
}

// SubmitReadiness combines intake completeness and checklist readiness into
// the canonical advance decision with itemized blocking reasons.
type SubmitReadiness struct {
	CanSubmit        bool               `json:"can_submit"`
	FundAppComplete  bool               `json:"fund_app_complete"`
	InterimComplete  bool               `json:"interim_complete"`
	DocumentsReady   bool               `json:"documents_ready"`
	MissingSections  []string           `json:"missing_sections"`
	MissingDocuments []string           `json:"missing_documents"`
	Completeness     IntakeCompleteness `json:"completeness"`
	Checklist        ChecklistReadiness `json:"checklist"`
}

// ReviewGate is the clinical-review half of the send-to-committee decision.
type ReviewGate struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}
