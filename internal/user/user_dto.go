package user

type UserResponse struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	UserTypeID int     `json:"user_type_id"`
	Role       string  `json:"role"`
	CompanyID  *string `json:"company_id"`
	CreatedAt  string  `json:"created_at"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=128"`
}
