package checklist

import (
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/constvars"
)

// TemplateRow is one (category, docType) slot in the checklist template.
// ProcessTypes nil means the row applies to every process type.
type TemplateRow struct {
	Category     string
	DocType      string
	Mandatory    bool
	ProcessTypes []string
}

// templateCatalog drives lazy checklist materialization. The twelve
// mandatory rows apply to all process types and form the canonical
// committee set; the trailing rows are optional, per process type.
var templateCatalog = []TemplateRow{
	{Category: constvars.DocCategoryGeneral, DocType: constvars.DocTypePatientIDProof, Mandatory: true},
	{Category: constvars.DocCategoryGeneral, DocType: constvars.DocTypeIncomeCertificate, Mandatory: true},
	{Category: constvars.DocCategoryGeneral, DocType: constvars.DocTypeReferralLetter, Mandatory: true},
	{Category: constvars.DocCategoryFinance, DocType: constvars.DocTypeCostEstimate, Mandatory: true},
	{Category: constvars.DocCategoryFinance, DocType: constvars.DocTypeFundRequestForm, Mandatory: true},
	{Category: constvars.DocCategoryFinance, DocType: constvars.DocTypeBankDetails, Mandatory: true},
	{Category: constvars.DocCategoryMedical, DocType: constvars.DocTypeDiagnosisReport, Mandatory: true},
	{Category: constvars.DocCategoryMedical, DocType: constvars.DocTypeTreatmentPlan, Mandatory: true},
	{Category: constvars.DocCategoryMedical, DocType: constvars.DocTypeInterimMedicalSummary, Mandatory: true},
	{Category: constvars.DocCategoryFinal, DocType: constvars.DocTypeFinalBill, Mandatory: true},
	{Category: constvars.DocCategoryFinal, DocType: constvars.DocTypeDischargeSummary, Mandatory: true},
	{Category: constvars.DocCategoryCommunication, DocType: constvars.DocTypeConsentForm, Mandatory: true},

	{Category: constvars.DocCategoryMedical, DocType: constvars.DocTypePhysiotherapyAssessment, ProcessTypes: []string{constvars.ProcessTypeBRC}},
	{Category: constvars.DocCategoryFinance, DocType: constvars.DocTypeImplantInvoice, ProcessTypes: []string{constvars.ProcessTypeCIP}},
	{Category: constvars.DocCategoryMedical, DocType: constvars.DocTypeOncologyProtocol, ProcessTypes: []string{constvars.ProcessTypeONC}},
	{Category: constvars.DocCategoryMedical, DocType: constvars.DocTypePreviousRecords, ProcessTypes: []string{constvars.ProcessTypeBRC, constvars.ProcessTypeONC}},
}

// Legacy short codes still present in older stored entries.
var docTypeAliases = map[string]string{
	"id_proof":   constvars.DocTypePatientIDProof,
	"inc_cert":   constvars.DocTypeIncomeCertificate,
	"ref_letter": constvars.DocTypeReferralLetter,
	"est":        constvars.DocTypeCostEstimate,
	"frf":        constvars.DocTypeFundRequestForm,
	"diag":       constvars.DocTypeDiagnosisReport,
	"ims":        constvars.DocTypeInterimMedicalSummary,
	"fin_bill":   constvars.DocTypeFinalBill,
	"dis_sum":    constvars.DocTypeDischargeSummary,
}

var categoryAliases = map[string]string{
	"GEN":  constvars.DocCategoryGeneral,
	"FIN":  constvars.DocCategoryFinance,
	"MED":  constvars.DocCategoryMedical,
	"FNL":  constvars.DocCategoryFinal,
	"COMM": constvars.DocCategoryCommunication,
}

var mandatoryCatalog = buildMandatoryCatalog()

func buildMandatoryCatalog() map[string]bool {
	catalog := make(map[string]bool)
	for _, row := range templateCatalog {
		if row.Mandatory {
			catalog[row.DocType] = true
		}
	}
	return catalog
}

func TemplateForProcessType(processType string) []TemplateRow {
	var rows []TemplateRow
	for _, row := range templateCatalog {
		if row.ProcessTypes == nil {
			rows = append(rows, row)
			continue
		}
		for _, pt := range row.ProcessTypes {
			if pt == processType {
				rows = append(rows, row)
				break
			}
		}
	}
	return rows
}

func ResolveDocType(docType string) string {
	if canonical, ok := docTypeAliases[docType]; ok {
		return canonical
	}
	return docType
}

func ResolveCategory(category string) string {
	if canonical, ok := categoryAliases[category]; ok {
		return canonical
	}
	return category
}

// ResolveEntryAliases rewrites legacy codes to canonical names and rejoins
// the mandatory flag from the template catalog. Applied on every read so
// stale stored flags never leak into gating decisions.
func ResolveEntryAliases(entry *models.DocumentChecklistEntry) {
	entry.DocType = ResolveDocType(entry.DocType)
	entry.Category = ResolveCategory(entry.Category)
	entry.MandatoryFlag = mandatoryCatalog[entry.DocType]
}

func IsCanonicalMandatory(docType string) bool {
	return mandatoryCatalog[ResolveDocType(docType)]
}
