package user_test

import (
	"context"
	"testing"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"
	securityMock "github.com/TheLeeJungYan/EINV-POS-API/internal/security/mock"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/user"
	usererrors "github.com/TheLeeJungYan/EINV-POS-API/internal/user/errors"
	userMock "github.com/TheLeeJungYan/EINV-POS-API/internal/user/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMock.NewMockRepository(ctrl)
	service := user.NewService(mockRepo, securityMock.NewMockPasswordHasher(ctrl))
	ctx := context.Background()

	companyID := uuid.New()
	users := []user.User{
		{ID: uuid.New(), Username: "owner", Email: "owner@kedai.my", UserTypeID: domain.RoleAdmin, CompanyID: &companyID},
		{ID: uuid.New(), Username: "cashier", Email: "cashier@kedai.my", UserTypeID: domain.RoleUser, CompanyID: &companyID},
	}

	t.Run("Admin Sees Own Company", func(t *testing.T) {
		mockRepo.EXPECT().FindAllByCompany(ctx, companyID.String()).Return(users, nil)

		resp, err := service.List(ctx, &domain.Caller{UserID: users[0].ID, CompanyID: &companyID, Role: domain.RoleAdmin})

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "ADMIN", resp[0].Role)
		assert.Equal(t, companyID.String(), *resp[0].CompanyID)
	})

	t.Run("Superadmin Sees Everyone", func(t *testing.T) {
		root := user.User{ID: uuid.New(), Username: "root", UserTypeID: domain.RoleSuperAdmin}
		mockRepo.EXPECT().FindAll(ctx).Return(append([]user.User{root}, users...), nil)

		resp, err := service.List(ctx, &domain.Caller{UserID: root.ID, Role: domain.RoleSuperAdmin})

		assert.NoError(t, err)
		assert.Len(t, resp, 3)
		assert.Nil(t, resp[0].CompanyID)
	})

	t.Run("User Is Forbidden", func(t *testing.T) {
		_, err := service.List(ctx, &domain.Caller{UserID: users[1].ID, CompanyID: &companyID, Role: domain.RoleUser})

		assert.ErrorIs(t, err, usererrors.ErrListForbidden)
		assert.True(t, apperror.IsCode(err, apperror.CodeForbidden))
	})
}

func TestService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMock.NewMockRepository(ctrl)
	service := user.NewService(mockRepo, securityMock.NewMockPasswordHasher(ctrl))
	ctx := context.Background()

	companyID := uuid.New()
	otherCompany := uuid.New()
	target := &user.User{ID: uuid.New(), Username: "cashier", UserTypeID: domain.RoleUser, CompanyID: &companyID}

	tests := []struct {
		name    string
		caller  *domain.Caller
		wantErr error
	}{
		{"self", &domain.Caller{UserID: target.ID, CompanyID: &companyID, Role: domain.RoleUser}, nil},
		{"admin same company", &domain.Caller{UserID: uuid.New(), CompanyID: &companyID, Role: domain.RoleAdmin}, nil},
		{"superadmin", &domain.Caller{UserID: uuid.New(), Role: domain.RoleSuperAdmin}, nil},
		{"admin other company", &domain.Caller{UserID: uuid.New(), CompanyID: &otherCompany, Role: domain.RoleAdmin}, usererrors.ErrUserNotFound},
		{"colleague", &domain.Caller{UserID: uuid.New(), CompanyID: &companyID, Role: domain.RoleUser}, usererrors.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)

			resp, err := service.GetByID(ctx, tt.caller, target.ID.String())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "cashier", resp.Username)
		})
	}

	t.Run("invalid id", func(t *testing.T) {
		_, err := service.GetByID(ctx, tests[0].caller, "x")
		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMock.NewMockRepository(ctrl)
	mockHasher := securityMock.NewMockPasswordHasher(ctrl)
	service := user.NewService(mockRepo, mockHasher)
	ctx := context.Background()

	u := &user.User{ID: uuid.New(), Password: "stored"}
	caller := u.Caller()

	t.Run("Success", func(t *testing.T) {
		mockHasher.EXPECT().ValidatePassword("N3w!Password").Return(nil)
		mockRepo.EXPECT().FindByID(ctx, u.ID).Return(u, nil)
		mockHasher.EXPECT().Verify("Old!Pass1", "stored").Return(true, nil)
		mockHasher.EXPECT().Hash("N3w!Password").Return("new-hash", nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, updated *user.User) error {
			assert.Equal(t, "new-hash", updated.Password)
			return nil
		})

		err := service.ChangePassword(ctx, caller, user.ChangePasswordRequest{CurrentPassword: "Old!Pass1", NewPassword: "N3w!Password"})
		assert.NoError(t, err)
	})

	t.Run("Wrong Current Password", func(t *testing.T) {
		u.Password = "stored"
		mockHasher.EXPECT().ValidatePassword("N3w!Password").Return(nil)
		mockRepo.EXPECT().FindByID(ctx, u.ID).Return(u, nil)
		mockHasher.EXPECT().Verify("nope", "stored").Return(false, nil)

		err := service.ChangePassword(ctx, caller, user.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "N3w!Password"})
		assert.ErrorIs(t, err, usererrors.ErrWrongPassword)
	})

	t.Run("Weak New Password", func(t *testing.T) {
		mockHasher.EXPECT().ValidatePassword("weak").Return(apperror.Validation("too short"))

		err := service.ChangePassword(ctx, caller, user.ChangePasswordRequest{CurrentPassword: "x", NewPassword: "weak"})
		assert.True(t, apperror.IsCode(err, apperror.CodeInvalidInput))
	})
}

func TestService_ResolveCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMock.NewMockRepository(ctrl)
	service := user.NewService(mockRepo, securityMock.NewMockPasswordHasher(ctrl))
	ctx := context.Background()

	companyID := uuid.New()
	u := &user.User{ID: uuid.New(), Username: "cashier", Email: "c@kedai.my", UserTypeID: domain.RoleUser, CompanyID: &companyID}

	mockRepo.EXPECT().FindByID(ctx, u.ID).Return(u, nil)
	caller, err := service.ResolveCaller(ctx, u.ID)
	assert.NoError(t, err)
	assert.Equal(t, &domain.Caller{UserID: u.ID, Username: "cashier", Email: "c@kedai.my", CompanyID: &companyID, Role: domain.RoleUser}, caller)

	missing := uuid.New()
	mockRepo.EXPECT().FindByID(ctx, missing).Return(nil, usererrors.ErrUserNotFound)
	_, err = service.ResolveCaller(ctx, missing)
	assert.True(t, apperror.IsCode(err, apperror.CodeNotFound))
}
