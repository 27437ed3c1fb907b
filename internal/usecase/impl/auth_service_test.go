package impl

import (
	"context"
	"testing"

	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	mockRepo "medifind/internal/mocks/repository"
	mockSvc "medifind/internal/mocks/service"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       newDiscardLogger(),
	})

	return service, userRepo, hasher, tokenSvc
}

func TestAuthService_Register_Success(t *testing.T) {
	service, userRepo, hasher, tokenSvc := newAuthServiceForTest(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindByEmail(ctx, "owner@example.lk").
		Return(nil, repository.ErrUserNotFound)

	hasher.EXPECT().
		Hash("secret123").
		Return("hashed-secret", nil)

	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	tokenSvc.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID"), entity.RoleOwner).
		Return("signed-token", nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Sunil",
		Email:    "owner@example.lk",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, "Sunil", output.User.Name)
	assert.Equal(t, entity.RoleOwner, output.User.Role)
	assert.Equal(t, 0, output.User.Points)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	service, userRepo, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	existing := &entity.User{ID: uuid.New(), Email: "owner@example.lk"}
	userRepo.EXPECT().
		FindByEmail(ctx, "owner@example.lk").
		Return(existing, nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Sunil",
		Email:    "owner@example.lk",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Register_RaceLostOnUniqueIndex(t *testing.T) {
	service, userRepo, hasher, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindByEmail(ctx, "owner@example.lk").
		Return(nil, repository.ErrUserNotFound)

	hasher.EXPECT().
		Hash("secret123").
		Return("hashed-secret", nil)

	// The unique index wins the race the pre-check lost.
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrEmailTaken.WrapMessage("duplicate email"))

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Sunil",
		Email:    "owner@example.lk",
		Password: "secret123",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "User already exists", appErr.Message())
}

func TestAuthService_Login_Success(t *testing.T) {
	service, userRepo, hasher, tokenSvc := newAuthServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "owner@example.lk",
		PasswordHash: "hashed-secret",
		Name:         "Sunil",
		Role:         entity.RoleOwner,
	}

	userRepo.EXPECT().
		FindByEmail(ctx, "owner@example.lk").
		Return(user, nil)

	hasher.EXPECT().
		Check("secret123", "hashed-secret").
		Return(true)

	tokenSvc.EXPECT().
		GenerateToken(userID, entity.RoleOwner).
		Return("signed-token", nil)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "owner@example.lk",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	service, userRepo, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.lk").
		Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.lk",
		Password: "whatever",
	})
	require.ErrorIs(t, err, domainerrors.ErrUserDoesNotExist)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "User does not exist", appErr.Message())
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, userRepo, hasher, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "owner@example.lk",
		PasswordHash: "hashed-secret",
	}

	userRepo.EXPECT().
		FindByEmail(ctx, "owner@example.lk").
		Return(user, nil)

	hasher.EXPECT().
		Check("wrong", "hashed-secret").
		Return(false)

	_, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "owner@example.lk",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_CurrentUser_StripsSensitiveFields(t *testing.T) {
	service, userRepo, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	pharmacyID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "owner@example.lk",
		PasswordHash: "hashed-secret",
		Name:         "Sunil",
		Role:         entity.RoleOwner,
		PharmacyID:   &pharmacyID,
		Points:       30,
	}

	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	view, err := service.CurrentUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, view.ID)
	assert.Equal(t, "Sunil", view.Name)
	assert.Equal(t, &pharmacyID, view.PharmacyID)
	assert.Equal(t, 30, view.Points)
}

func TestAuthService_CurrentUser_Missing(t *testing.T) {
	service, userRepo, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := service.CurrentUser(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserDoesNotExist)
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	service, userRepo, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindByEmail(ctx, "owner@example.lk").
		Return(nil, errors.New("connection reset"))

	_, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "owner@example.lk",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
