package services

import (
	"testing"
	"time"

	"github.com/mkobayashi/portfolio-api/internal/models"
	"github.com/mkobayashi/portfolio-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupExperienceService(t *testing.T) *ExperienceService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Experience{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewExperienceService(repository.NewExperienceRepository(db))
}

func TestExperienceService_CreateJoinsBullets(t *testing.T) {
	svc := setupExperienceService(t)

	experience, err := svc.Create(CreateExperienceInput{
		Title:       "Engineer",
		Company:     "Acme",
		StartDate:   time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		Description: []string{"Built the API", "Ran the infra"},
	})
	require.NoError(t, err)
	require.Equal(t, "Built the API\nRan the infra", experience.Description)
}

func TestExperienceService_CurrentPositionHasNoEndDate(t *testing.T) {
	svc := setupExperienceService(t)

	end := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	experience, err := svc.Create(CreateExperienceInput{
		Title:       "Engineer",
		Company:     "Acme",
		StartDate:   time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     &end,
		IsCurrent:   true,
		Description: []string{"Built the API"},
	})
	require.NoError(t, err)
	require.Nil(t, experience.EndDate)
	require.True(t, experience.IsCurrent)
}

func TestExperienceService_UpdateToCurrentClearsEndDate(t *testing.T) {
	svc := setupExperienceService(t)

	end := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	experience, err := svc.Create(CreateExperienceInput{
		Title:       "Engineer",
		Company:     "Acme",
		StartDate:   time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     &end,
		Description: []string{"Built the API"},
	})
	require.NoError(t, err)
	require.NotNil(t, experience.EndDate)

	isCurrent := true
	updated, err := svc.Update(experience.ID, UpdateExperienceInput{IsCurrent: &isCurrent})
	require.NoError(t, err)
	require.True(t, updated.IsCurrent)
	require.Nil(t, updated.EndDate)
}

func TestExperienceService_CreateRequiresFields(t *testing.T) {
	svc := setupExperienceService(t)

	_, err := svc.Create(CreateExperienceInput{
		Title:   "Engineer",
		Company: "Acme",
	})
	require.ErrorIs(t, err, ErrMissingExperienceFields)
}

func TestExperienceService_ListNewestFirst(t *testing.T) {
	svc := setupExperienceService(t)

	_, err := svc.Create(CreateExperienceInput{
		Title:       "Junior",
		Company:     "Acme",
		StartDate:   time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
		Description: []string{"Learned"},
	})
	require.NoError(t, err)
	_, err = svc.Create(CreateExperienceInput{
		Title:       "Senior",
		Company:     "Acme",
		StartDate:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		Description: []string{"Led"},
	})
	require.NoError(t, err)

	experiences, err := svc.List()
	require.NoError(t, err)
	require.Len(t, experiences, 2)
	require.Equal(t, "Senior", experiences[0].Title)
	require.Equal(t, "Junior", experiences[1].Title)
}

func TestExperienceService_DeleteRemovesRow(t *testing.T) {
	svc := setupExperienceService(t)

	experience, err := svc.Create(CreateExperienceInput{
		Title:       "Engineer",
		Company:     "Acme",
		StartDate:   time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		Description: []string{"Built the API"},
	})
	require.NoError(t, err)

	_, err = svc.Delete(experience.ID)
	require.NoError(t, err)

	_, err = svc.Delete(experience.ID)
	require.ErrorIs(t, err, ErrExperienceNotFound)
}
