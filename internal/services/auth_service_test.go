package services

import (
	"testing"

	"github.com/mkobayashi/portfolio-api/internal/models"
	"github.com/mkobayashi/portfolio-api/internal/repository"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewAuthService(repository.NewUserRepository(db), bcrypt.MinCost), db
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, _ := setupAuthService(t)

	user, err := svc.Register(RegisterInput{
		Name:     "A",
		Email:    "A@X.com",
		Password: "p1",
	})
	require.NoError(t, err)
	require.Equal(t, "a@x.com", user.Email, "email must be stored lowercased")
	require.NotEqual(t, "p1", user.PasswordHash)

	got, err := svc.Login(LoginInput{Email: "a@x.com", Password: "p1"})
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register(RegisterInput{Name: "A", Email: "a@x.com", Password: "p1"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Name: "A", Email: "a@x.com", Password: "p1"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_WrongPassword(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register(RegisterInput{Name: "A", Email: "a@x.com", Password: "p1"})
	require.NoError(t, err)

	_, err = svc.Login(LoginInput{Email: "a@x.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(LoginInput{Email: "nobody@x.com", Password: "p1"})
	require.ErrorIs(t, err, ErrInvalidCredentials, "unknown email must be indistinguishable from wrong password")
}

func TestAuthService_MissingFields(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register(RegisterInput{Name: "", Email: "a@x.com", Password: "p1"})
	require.ErrorIs(t, err, ErrMissingAuthFields)
}

// Re-saving a user without supplying a new password must leave the stored
// hash untouched: hashing happens only in Register.
func TestAuthService_HashIdempotentOnResave(t *testing.T) {
	svc, db := setupAuthService(t)

	user, err := svc.Register(RegisterInput{Name: "A", Email: "a@x.com", Password: "p1"})
	require.NoError(t, err)
	originalHash := user.PasswordHash

	user.Name = "Renamed"
	require.NoError(t, db.Save(user).Error)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	require.Equal(t, originalHash, reloaded.PasswordHash)

	_, err = svc.Login(LoginInput{Email: "a@x.com", Password: "p1"})
	require.NoError(t, err)
}
