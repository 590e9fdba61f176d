package user

import (
	"time"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"

	"github.com/google/uuid"
)

// User is an authentication principal. CompanyID is nil only for the
// platform superadmin.
type User struct {
	ID         uuid.UUID   `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Username   string      `gorm:"column:username;type:varchar(50);not null;uniqueIndex:uq_users_username"`
	Email      string      `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Password   string      `gorm:"column:password;type:text;not null"`
	UserTypeID domain.Role `gorm:"column:user_type_id;not null;default:3"`
	CompanyID  *uuid.UUID  `gorm:"column:company_id;type:uuid;index"`
	CreatedAt  time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) Caller() *domain.Caller {
	return &domain.Caller{
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CompanyID: u.CompanyID,
		Role:      u.UserTypeID,
	}
}
