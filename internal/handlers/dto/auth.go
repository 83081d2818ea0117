package dto

type RegisterRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=80"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8,max=64"`
	SecurityQuestion string `json:"security_question" binding:"required,max=200"`
	SecurityAnswer   string `json:"security_answer" binding:"required,max=200"`
	PhotoURL         string `json:"photo_url"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RecoverRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email          string `json:"email" binding:"required,email"`
	SecurityAnswer string `json:"security_answer" binding:"required"`
	NewPassword    string `json:"new_password" binding:"required,min=8,max=64"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name" binding:"omitempty,min=2,max=80"`
	PhotoURL string `json:"photo_url"`
}
