package constvars

// Checklist entry statuses.
const (
	DocStatusMissing       = "Missing"
	DocStatusUploaded      = "Uploaded"
	DocStatusVerified      = "Verified"
	DocStatusRejected      = "Rejected"
	DocStatusNotApplicable = "Not_Applicable"
)

// Checklist categories.
const (
	DocCategoryGeneral       = "GENERAL"
	DocCategoryFinance       = "FINANCE"
	DocCategoryMedical       = "MEDICAL"
	DocCategoryFinal         = "FINAL"
	DocCategoryCommunication = "COMMUNICATION"
)

// Canonical document types. The twelve below are the mandatory committee set
// for every process type; template rows may add optional types per process.
const (
	DocTypePatientIDProof        = "patient_id_proof"
	DocTypeIncomeCertificate     = "income_certificate"
	DocTypeReferralLetter        = "referral_letter"
	DocTypeCostEstimate          = "cost_estimate"
	DocTypeFundRequestForm       = "fund_request_form"
	DocTypeBankDetails           = "bank_details"
	DocTypeDiagnosisReport       = "diagnosis_report"
	DocTypeTreatmentPlan         = "treatment_plan"
	DocTypeInterimMedicalSummary = "interim_medical_summary"
	DocTypeFinalBill             = "final_bill"
	DocTypeDischargeSummary      = "discharge_summary"
	DocTypeConsentForm           = "consent_form"
)

// Optional process-specific document types.
const (
	DocTypePhysiotherapyAssessment = "physiotherapy_assessment"
	DocTypeImplantInvoice          = "implant_invoice"
	DocTypeOncologyProtocol        = "oncology_protocol"
	DocTypePreviousRecords         = "previous_treatment_records"
)

// MandatoryDocCatalogSize is the size of the canonical mandatory set.
// Checklist readiness requires all twelve to be present and satisfied,
// whatever the process-type template produced.
const MandatoryDocCatalogSize = 12
