// internals/features/home/contact/dto/contact_dto.go
package dto

type ContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required,min=2,max=150"`
	Email   string `json:"email" form:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" form:"subject" validate:"omitempty,oneof=general support partnership feedback"`
	Message string `json:"message" form:"message" validate:"required,min=10,max=5000"`
}
