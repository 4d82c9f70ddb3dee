package utils

import (
	"caseflow-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginRequest(request *requests.Login) {
	request.Username = strings.ToLower(strings.TrimSpace(request.Username))
}

func SanitizeRegisterUserRequest(request *requests.RegisterUser) {
	request.Username = strings.ToLower(strings.TrimSpace(request.Username))
	request.FullName = strings.TrimSpace(request.FullName)
	request.Role = strings.TrimSpace(request.Role)
	request.HospitalID = strings.TrimSpace(request.HospitalID)
}

func SanitizeCreateCaseRequest(request *requests.CreateCase) {
	request.ProcessType = strings.ToUpper(strings.TrimSpace(request.ProcessType))
	request.HospitalID = strings.TrimSpace(request.HospitalID)
	request.HospitalName = strings.TrimSpace(request.HospitalName)
	request.PatientName = strings.TrimSpace(request.PatientName)
}

func SanitizeReturnToHospitalRequest(request *requests.ReturnToHospital) {
	request.Reason = strings.TrimSpace(request.Reason)
	request.Comment = strings.TrimSpace(request.Comment)
}
