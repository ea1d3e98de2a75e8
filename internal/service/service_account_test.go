package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/perf-dashboard/internal/crypto"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/internal/mock"
	"github.com/MKhiriev/perf-dashboard/internal/store"
	"github.com/MKhiriev/perf-dashboard/models"
)

type accountMocks struct {
	repo   *mock.MockUserRepository
	intake *mock.MockFileIntakeService
}

func newTestAccountSvc(t *testing.T) (AccountService, accountMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := accountMocks{
		repo:   mock.NewMockUserRepository(ctrl),
		intake: mock.NewMockFileIntakeService(ctrl),
	}

	inner := NewAccountService(m.repo, crypto.NewPasswordHasher(bcrypt.MinCost), m.intake, models.ImagePolicy("uploads"), logger.Nop())
	return NewAccountValidationService().Wrap(inner), m
}

func pngLogo() *models.IncomingFile {
	return &models.IncomingFile{FieldName: "logo", OriginalName: "logo.png", MIMEType: "image/png", Size: 3, Content: strings.NewReader("png")}
}

var bobRegistration = models.AdminRegistration{
	Username:        "bob",
	Email:           "bob@x.com",
	Password:        "secret12",
	ConfirmPassword: "secret12",
}

// ── RegisterAdmin ────────────────────────────────────────────────────────────

func TestAccountService_RegisterAdmin_WithLogo(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	storedLogo := models.StoredFile{FileID: 9, Filename: "1718000000000.png", Path: "uploads/1718000000000.png"}

	m.repo.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(models.User{}, store.ErrUserNotFound)
	m.repo.EXPECT().FindUserByEmail(gomock.Any(), "bob@x.com").Return(models.User{}, store.ErrUserNotFound)
	m.intake.EXPECT().Accept(gomock.Any(), gomock.Any(), nil, gomock.Any()).Return([]models.StoredFile{storedLogo}, nil)
	m.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, models.RoleAdmin, u.Role)
			require.NotNil(t, u.Logo)
			assert.Equal(t, "/uploads/1718000000000.png", *u.Logo)
			assert.NotEqual(t, "secret12", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret12")))
			u.UserID = 1
			return u, nil
		})

	admin, err := svc.RegisterAdmin(context.Background(), bobRegistration, pngLogo())
	require.NoError(t, err)
	assert.Equal(t, int64(1), admin.UserID)
}

func TestAccountService_RegisterAdmin_Rejections(t *testing.T) {
	existing := models.User{UserID: 5, Username: "bob", Role: models.RoleAdmin}

	tests := []struct {
		name    string
		reg     models.AdminRegistration
		expect  func(m accountMocks)
		wantErr error
	}{
		{
			name:    "invalid email",
			reg:     models.AdminRegistration{Username: "bob", Email: "nope", Password: "secret12", ConfirmPassword: "secret12"},
			expect:  func(m accountMocks) {},
			wantErr: ErrValidation,
		},
		{
			name: "username taken",
			reg:  bobRegistration,
			expect: func(m accountMocks) {
				m.repo.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(existing, nil)
			},
			wantErr: ErrUsernameExists,
		},
		{
			name: "email taken",
			reg:  bobRegistration,
			expect: func(m accountMocks) {
				m.repo.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(models.User{}, store.ErrUserNotFound)
				m.repo.EXPECT().FindUserByEmail(gomock.Any(), "bob@x.com").Return(existing, nil)
			},
			wantErr: ErrEmailExists,
		},
		{
			name: "confirmation differs",
			reg:  models.AdminRegistration{Username: "bob", Email: "bob@x.com", Password: "secret12", ConfirmPassword: "secret13"},
			expect: func(m accountMocks) {
				m.repo.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(models.User{}, store.ErrUserNotFound)
				m.repo.EXPECT().FindUserByEmail(gomock.Any(), "bob@x.com").Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: ErrPasswordsDoNotMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestAccountSvc(t)
			tt.expect(m)

			_, err := svc.RegisterAdmin(context.Background(), tt.reg, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// A racing registration that slips past the pre-check is caught by the
// unique constraint; the already stored logo is discarded.
func TestAccountService_RegisterAdmin_ConstraintViolationDiscardsLogo(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	storedLogo := models.StoredFile{FileID: 9, Filename: "1.png"}

	m.repo.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(models.User{}, store.ErrUserNotFound)
	m.repo.EXPECT().FindUserByEmail(gomock.Any(), "bob@x.com").Return(models.User{}, store.ErrUserNotFound)
	m.intake.EXPECT().Accept(gomock.Any(), gomock.Any(), nil, gomock.Any()).Return([]models.StoredFile{storedLogo}, nil)
	m.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)
	m.intake.EXPECT().Discard(gomock.Any(), storedLogo)

	_, err := svc.RegisterAdmin(context.Background(), bobRegistration, pngLogo())
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestAccountService_RegisterAdmin_LogoRejected(t *testing.T) {
	svc, m := newTestAccountSvc(t)

	m.repo.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(models.User{}, store.ErrUserNotFound)
	m.repo.EXPECT().FindUserByEmail(gomock.Any(), "bob@x.com").Return(models.User{}, store.ErrUserNotFound)
	m.intake.EXPECT().Accept(gomock.Any(), gomock.Any(), nil, gomock.Any()).Return(nil, ErrInvalidFileType)

	_, err := svc.RegisterAdmin(context.Background(), bobRegistration, pngLogo())
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

// ── analysts ─────────────────────────────────────────────────────────────────

func TestAccountService_CreateAnalyst(t *testing.T) {
	svc, m := newTestAccountSvc(t)

	m.repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrUserNotFound)
	m.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, models.RoleAnalyst, u.Role)
			assert.Nil(t, u.Email)
			u.UserID = 2
			return u, nil
		})

	analyst, err := svc.CreateAnalyst(context.Background(), models.AnalystCreation{Username: "alice", Password: "pw1234"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), analyst.UserID)
}

func TestAccountService_CreateAnalyst_Conflicts(t *testing.T) {
	t.Run("pre-check", func(t *testing.T) {
		svc, m := newTestAccountSvc(t)
		m.repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{UserID: 2}, nil)

		_, err := svc.CreateAnalyst(context.Background(), models.AnalystCreation{Username: "alice", Password: "pw1234"})
		assert.ErrorIs(t, err, ErrUsernameExists)
	})

	t.Run("constraint", func(t *testing.T) {
		svc, m := newTestAccountSvc(t)
		m.repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrUserNotFound)
		m.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

		_, err := svc.CreateAnalyst(context.Background(), models.AnalystCreation{Username: "alice", Password: "pw1234"})
		assert.ErrorIs(t, err, ErrUsernameExists)
	})

	t.Run("short password", func(t *testing.T) {
		svc, _ := newTestAccountSvc(t)

		_, err := svc.CreateAnalyst(context.Background(), models.AnalystCreation{Username: "alice", Password: "pw"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestAccountService_DeleteAnalyst(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		repoErr error
		wantErr error
	}{
		{name: "deleted", id: 2},
		{name: "admin id or missing", id: 1, repoErr: store.ErrUserNotFound, wantErr: ErrAnalystNotFound},
		{name: "non-positive id", id: 0, wantErr: ErrAnalystNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestAccountSvc(t)
			if tt.id > 0 {
				m.repo.EXPECT().DeleteUserWithRole(gomock.Any(), tt.id, models.RoleAnalyst).Return(tt.repoErr)
			}

			err := svc.DeleteAnalyst(context.Background(), tt.id)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccountService_ListAnalysts(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	m.repo.EXPECT().ListUsersByRole(gomock.Any(), models.RoleAnalyst).Return([]models.User{{UserID: 2, Username: "alice"}}, nil)

	analysts, err := svc.ListAnalysts(context.Background())
	require.NoError(t, err)
	assert.Len(t, analysts, 1)
}

// ── self service ─────────────────────────────────────────────────────────────

func TestAccountService_GetSelf_NotFound(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	m.repo.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetSelf(context.Background(), 7)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAccountService_UpdateSelf_OnlyChangedFields(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	current := models.User{UserID: 1, Username: "bob", Email: strPtr("bob@x.com"), Role: models.RoleAdmin}

	m.repo.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(current, nil)
	m.repo.EXPECT().FindUserByEmail(gomock.Any(), "new@x.com").Return(models.User{}, store.ErrUserNotFound)
	m.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.UserUpdate) (models.User, error) {
			assert.Nil(t, u.Username, "unchanged username must not be written")
			require.NotNil(t, u.Email)
			assert.Equal(t, "new@x.com", *u.Email)
			assert.Nil(t, u.Logo)
			updated := current
			updated.Email = u.Email
			return updated, nil
		})

	user, err := svc.UpdateSelf(context.Background(), 1, models.ProfileUpdate{Username: "bob", Email: "new@x.com"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", *user.Email)
}

func TestAccountService_UpdateSelf_NothingToChange(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	current := models.User{UserID: 1, Username: "bob", Role: models.RoleAdmin}
	m.repo.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(current, nil)

	user, err := svc.UpdateSelf(context.Background(), 1, models.ProfileUpdate{}, nil)
	require.NoError(t, err)
	assert.Equal(t, current, user)
}

func TestAccountService_UpdateSelf_UsernameTakenByOther(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	m.repo.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, Username: "bob"}, nil)
	m.repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{UserID: 2, Username: "alice"}, nil)

	_, err := svc.UpdateSelf(context.Background(), 1, models.ProfileUpdate{Username: "alice"}, nil)
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestAccountService_UpdateSelf_LogoDiscardedOnFailure(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	stored := models.StoredFile{FileID: 3, Filename: "5.png"}
	uploader := int64(1)

	m.repo.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, Username: "bob"}, nil)
	m.intake.EXPECT().Accept(gomock.Any(), gomock.Any(), &uploader, gomock.Any()).Return([]models.StoredFile{stored}, nil)
	m.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("db down"))
	m.intake.EXPECT().Discard(gomock.Any(), stored)

	_, err := svc.UpdateSelf(context.Background(), 1, models.ProfileUpdate{}, pngLogo())
	require.Error(t, err)
}

// ── ChangePassword ───────────────────────────────────────────────────────────

func TestAccountService_ChangePassword(t *testing.T) {
	oldHash := mustHash(t, "secret12")
	bob := models.User{UserID: 1, Username: "bob", PasswordHash: oldHash, Role: models.RoleAdmin}

	t.Run("mismatch", func(t *testing.T) {
		svc, _ := newTestAccountSvc(t)

		err := svc.ChangePassword(context.Background(), 1, models.PasswordChange{CurrentPassword: "secret12", NewPassword: "newpass1", ConfirmPassword: "newpass2"})
		assert.ErrorIs(t, err, ErrPasswordsDoNotMatch)
	})

	t.Run("wrong current password keeps hash", func(t *testing.T) {
		svc, m := newTestAccountSvc(t)
		m.repo.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(bob, nil)
		m.repo.EXPECT().UpdatePasswordHash(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.ChangePassword(context.Background(), 1, models.PasswordChange{CurrentPassword: "nope-nope", NewPassword: "newpass1", ConfirmPassword: "newpass1"})
		assert.ErrorIs(t, err, ErrCurrentPasswordIncorrect)
	})

	t.Run("success", func(t *testing.T) {
		svc, m := newTestAccountSvc(t)
		m.repo.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(bob, nil)
		m.repo.EXPECT().UpdatePasswordHash(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass1")))
				return nil
			})

		err := svc.ChangePassword(context.Background(), 1, models.PasswordChange{CurrentPassword: "secret12", NewPassword: "newpass1", ConfirmPassword: "newpass1"})
		assert.NoError(t, err)
	})
}
