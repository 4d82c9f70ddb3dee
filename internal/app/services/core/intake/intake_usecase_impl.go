package intake

import (
	"context"
	"fmt"
	"time"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/constvars"
	"caseflow-service/internal/pkg/dto/requests"
	"caseflow-service/internal/pkg/dto/responses"
	"caseflow-service/internal/pkg/exceptions"

	"github.com/google/uuid"
)

type intakeUsecase struct {
	IntakeRepository contracts.IntakeRepository
	CaseRepository   contracts.CaseRepository
	ChecklistUsecase contracts.ChecklistUsecase
	AuditService     contracts.AuditService
}

func NewIntakeUsecase(
	intakeRepository contracts.IntakeRepository,
	caseRepository contracts.CaseRepository,
	checklistUsecase contracts.ChecklistUsecase,
	auditService contracts.AuditService,
) contracts.IntakeUsecase {
	return &intakeUsecase{
		IntakeRepository: intakeRepository,
		CaseRepository:   caseRepository,
		ChecklistUsecase: checklistUsecase,
		AuditService:     auditService,
	}
}

// loadIntake returns the stored documents, substituting empty ones when a
// case has never saved intake data. Readers and the completeness evaluator
// both rely on absent meaning all sections incomplete.
func (uc *intakeUsecase) loadIntake(ctx context.Context, caseID string) (*models.IntakeFundApplication, *models.IntakeInterimSummary, error) {
	fundApp, err := uc.IntakeRepository.FindFundApplication(ctx, caseID)
	if err != nil {
		return nil, nil, err
	}
	if fundApp == nil {
		fundApp = &models.IntakeFundApplication{CaseID: caseID}
	}

	summary, err := uc.IntakeRepository.FindInterimSummary(ctx, caseID)
	if err != nil {
		return nil, nil, err
	}
	if summary == nil {
		summary = &models.IntakeInterimSummary{CaseID: caseID}
	}
	return fundApp, summary, nil
}

func (uc *intakeUsecase) GetIntakeData(ctx context.Context, caseID string) (*contracts.IntakeData, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}

	fundApp, summary, err := uc.loadIntake(ctx, caseID)
	if err != nil {
		return nil, err
	}
	return &contracts.IntakeData{FundApplication: fundApp, InterimSummary: summary}, nil
}

func (uc *intakeUsecase) SaveIntakeData(ctx context.Context, caseID string, request *requests.SaveIntake, session *models.Session) (*contracts.IntakeData, bool, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, false, err
	}
	if caseModel == nil {
		return nil, false, exceptions.ErrCaseNotFound(nil)
	}

	fundApp, summary, err := uc.loadIntake(ctx, caseID)
	if err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()
	if request.FundApplication != nil {
		ApplyFundApplicationPatch(fundApp, request.FundApplication)
		if fundApp.ID == "" {
			fundApp.ID = uuid.New().String()
		}
		fundApp.UpdatedAt = now
		if err := uc.IntakeRepository.SaveFundApplication(ctx, fundApp); err != nil {
			return nil, false, err
		}
	}
	if request.InterimSummary != nil {
		ApplyInterimSummaryPatch(summary, request.InterimSummary)
		if summary.ID == "" {
			summary.ID = uuid.New().String()
		}
		summary.UpdatedAt = now
		if err := uc.IntakeRepository.SaveInterimSummary(ctx, summary); err != nil {
			return nil, false, err
		}
	}

	auditFailed := false
	if err := uc.AuditService.Record(ctx, &models.AuditEvent{
		CaseID:    caseID,
		Timestamp: now,
		UserID:    session.UserID,
		UserRole:  session.Role,
		Action:    constvars.AuditActionIntakeSaved,
	}); err != nil {
		auditFailed = true
	}

	return &contracts.IntakeData{FundApplication: fundApp, InterimSummary: summary}, auditFailed, nil
}

func (uc *intakeUsecase) GetIntakeCompleteness(ctx context.Context, caseID string) (*responses.IntakeCompleteness, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}

	fundApp, summary, err := uc.loadIntake(ctx, caseID)
	if err != nil {
		return nil, err
	}
	return ComputeCompleteness(fundApp, summary), nil
}

// GetCaseSubmitReadiness joins intake completeness with the strict
// checklist gate and itemizes every blocker by name.
func (uc *intakeUsecase) GetCaseSubmitReadiness(ctx context.Context, caseID string) (*responses.SubmitReadiness, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}

	fundApp, summary, err := uc.loadIntake(ctx, caseID)
	if err != nil {
		return nil, err
	}
	completeness := ComputeCompleteness(fundApp, summary)

	checklist, err := uc.ChecklistUsecase.GetChecklistReadiness(ctx, caseID)
	if err != nil {
		return nil, err
	}

	missingSections := []string{}
	for _, named := range fundApp.Sections() {
		if !completeness.FundAppSections[named.Name] {
			missingSections = append(missingSections, fmt.Sprintf("Fund Application: %s", named.Name))
		}
	}
	for _, named := range summary.Sections() {
		if !completeness.InterimSummarySections[named.Name] {
			missingSections = append(missingSections, fmt.Sprintf("Interim Summary: %s", named.Name))
		}
	}

	return &responses.SubmitReadiness{
		CanSubmit:        completeness.FundAppIsComplete && completeness.InterimSummaryIsComplete && checklist.IsReady,
		FundAppComplete:  completeness.FundAppIsComplete,
		InterimComplete:  completeness.InterimSummaryIsComplete,
		DocumentsReady:   checklist.IsReady,
		MissingSections:  missingSections,
		MissingDocuments: checklist.BlockingDocs,
		Completeness:     *completeness,
		Checklist:        *checklist,
	}, nil
}
