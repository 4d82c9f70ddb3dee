package intake

import (
	"math"
	"strings"

	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/dto/responses"
)

// IsSectionComplete applies the single completeness rule: at least one
// field with a non-empty value after trimming. Whitespace-only values do
// not count.
func IsSectionComplete(section models.IntakeSection) bool {
	for _, value := range section {
		if strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}

func sectionStates(sections []models.NamedSection) (map[string]bool, int) {
	states := make(map[string]bool, len(sections))
	complete := 0
	for _, named := range sections {
		ok := IsSectionComplete(named.Section)
		states[named.Name] = ok
		if ok {
			complete++
		}
	}
	return states, complete
}

func groupPercent(complete, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(complete) / float64(total) * 100))
}

// ComputeCompleteness derives the full completeness view from the two
// intake documents. Pure; storage never holds the result.
func ComputeCompleteness(fundApp *models.IntakeFundApplication, summary *models.IntakeInterimSummary) *responses.IntakeCompleteness {
	fundSections := fundApp.Sections()
	interimSections := summary.Sections()

	fundStates, fundComplete := sectionStates(fundSections)
	interimStates, interimComplete := sectionStates(interimSections)

	fundPercent := groupPercent(fundComplete, len(fundSections))
	interimPercent := groupPercent(interimComplete, len(interimSections))

	return &responses.IntakeCompleteness{
		FundAppSections:           fundStates,
		InterimSummarySections:    interimStates,
		FundAppPercent:            fundPercent,
		InterimSummaryPercent:     interimPercent,
		FundAppIsComplete:         fundComplete == len(fundSections),
		InterimSummaryIsComplete:  interimComplete == len(interimSections),
		OverallPercent:            int(math.Round(float64(fundPercent+interimPercent) / 2)),
		AllRequiredFieldsComplete: fundComplete == len(fundSections) && interimComplete == len(interimSections),
	}
}
