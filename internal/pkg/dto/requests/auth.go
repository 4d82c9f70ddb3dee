package requests

type Login struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterUser struct {
	Username   string `json:"username" validate:"required,min=3,max=64"`
	Password   string `json:"password" validate:"required,min=8"`
	FullName   string `json:"full_name" validate:"required,max=128"`
	Role       string `json:"role" validate:"required,oneof=Admin Hospital Verifier Doctor Committee Leadership"`
	HospitalID string `json:"hospital_id" validate:"required_if=Role Hospital"`
}
