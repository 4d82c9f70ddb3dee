package contracts

import (
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/dto/requests"
	"caseflow-service/internal/pkg/dto/responses"
	"context"
)

type IntakeRepository interface {
	FindFundApplication(ctx context.Context, caseID string) (*models.IntakeFundApplication, error)
	FindInterimSummary(ctx context.Context, caseID string) (*models.IntakeInterimSummary, error)
	SaveFundApplication(ctx context.Context, fundApp *models.IntakeFundApplication) error
	SaveInterimSummary(ctx context.Context, summary *models.IntakeInterimSummary) error
}

type IntakeData struct {
	FundApplication *models.IntakeFundApplication `json:"fund_application"`
	InterimSummary  *models.IntakeInterimSummary  `json:"interim_summary"`
}

type IntakeUsecase interface {
	GetIntakeData(ctx context.Context, caseID string) (*IntakeData, error)
	SaveIntakeData(ctx context.Context, caseID string, request *requests.SaveIntake, session *models.Session) (result *IntakeData, auditFailed bool, err error)
	GetIntakeCompleteness(ctx context.Context, caseID string) (*responses.IntakeCompleteness, error)
	GetCaseSubmitReadiness(ctx context.Context, caseID string) (*responses.SubmitReadiness, error)
}
