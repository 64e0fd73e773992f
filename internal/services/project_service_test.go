package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mkobayashi/portfolio-api/internal/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeStorage struct {
	mu       sync.Mutex
	counter  int
	stored   []string
	deleted  []string
	storeErr error
}

func (f *fakeStorage) Store(_ context.Context, _ io.Reader, originalName string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.storeErr != nil {
		return "", f.storeErr
	}
	f.counter++
	name := fmt.Sprintf("stored-%d-%s", f.counter, originalName)
	f.stored = append(f.stored, name)
	return name, nil
}

func (f *fakeStorage) Delete(_ context.Context, storedName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, storedName)
	return nil
}

func (f *fakeStorage) deletedFiles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

type fakeProjectRepo struct {
	nextID    uint64
	projects  map[uint64]*models.Project
	createErr error
	saveErr   error
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[uint64]*models.Project{}}
}

func (r *fakeProjectRepo) Create(project *models.Project) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	project.ID = r.nextID
	copied := *project
	r.projects[project.ID] = &copied
	return nil
}

func (r *fakeProjectRepo) FindByID(id uint64, includeDeleted bool) (*models.Project, error) {
	project, ok := r.projects[id]
	if !ok || (!includeDeleted && project.IsDeleted) {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *project
	return &copied, nil
}

func (r *fakeProjectRepo) List(includeDeleted bool) ([]models.Project, error) {
	var out []models.Project
	for _, p := range r.projects {
		if !includeDeleted && p.IsDeleted {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProjectRepo) Save(project *models.Project) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	copied := *project
	r.projects[project.ID] = &copied
	return nil
}

func newProjectService(repo *fakeProjectRepo, files *fakeStorage) *ProjectService {
	return NewProjectService(repo, files, zap.NewNop().Sugar())
}

func TestProjectService_CreateStoresImage(t *testing.T) {
	repo := newFakeProjectRepo()
	files := &fakeStorage{}
	svc := newProjectService(repo, files)

	project, err := svc.Create(context.Background(), CreateProjectInput{
		Title:       "App",
		Description: "Desc",
		Tags:        []string{"go", "gin"},
	}, strings.NewReader("image-bytes"), "shot.png")
	require.NoError(t, err)
	require.Equal(t, "/uploads/stored-1-shot.png", project.ImageURL)
	require.Equal(t, "go,gin", project.Tags)
	require.Empty(t, files.deletedFiles())
}

func TestProjectService_CreateRequiresFields(t *testing.T) {
	svc := newProjectService(newFakeProjectRepo(), &fakeStorage{})

	_, err := svc.Create(context.Background(), CreateProjectInput{Title: "App"}, strings.NewReader("x"), "shot.png")
	require.ErrorIs(t, err, ErrMissingProjectFields)

	_, err = svc.Create(context.Background(), CreateProjectInput{Title: "App", Description: "Desc"}, nil, "")
	require.ErrorIs(t, err, ErrMissingProjectFields)
}

// A failed insert must remove the file that was stored for it, so a failed
// create leaves no orphan behind.
func TestProjectService_CreateCleansUpOnInsertFailure(t *testing.T) {
	repo := newFakeProjectRepo()
	repo.createErr = errors.New("insert failed")
	files := &fakeStorage{}
	svc := newProjectService(repo, files)

	_, err := svc.Create(context.Background(), CreateProjectInput{
		Title:       "App",
		Description: "Desc",
	}, strings.NewReader("image-bytes"), "shot.png")
	require.Error(t, err)
	require.Equal(t, []string{"stored-1-shot.png"}, files.deletedFiles())
}

func TestProjectService_UpdateReplacesImage(t *testing.T) {
	repo := newFakeProjectRepo()
	files := &fakeStorage{}
	svc := newProjectService(repo, files)

	project, err := svc.Create(context.Background(), CreateProjectInput{
		Title:       "App",
		Description: "Desc",
	}, strings.NewReader("old"), "old.png")
	require.NoError(t, err)

	title := "App v2"
	updated, err := svc.Update(context.Background(), project.ID, UpdateProjectInput{
		Title: &title,
	}, strings.NewReader("new"), "new.png")
	require.NoError(t, err)
	require.Equal(t, "App v2", updated.Title)
	require.Equal(t, "/uploads/stored-2-new.png", updated.ImageURL)

	// The old file is removed in the background after the save succeeds.
	require.Eventually(t, func() bool {
		deleted := files.deletedFiles()
		return len(deleted) == 1 && deleted[0] == "stored-1-old.png"
	}, time.Second, 10*time.Millisecond)
}

// When the save fails the record still references the old image, so the
// freshly stored file is the one removed.
func TestProjectService_UpdateCleansUpNewFileOnSaveFailure(t *testing.T) {
	repo := newFakeProjectRepo()
	files := &fakeStorage{}
	svc := newProjectService(repo, files)

	project, err := svc.Create(context.Background(), CreateProjectInput{
		Title:       "App",
		Description: "Desc",
	}, strings.NewReader("old"), "old.png")
	require.NoError(t, err)

	repo.saveErr = errors.New("save failed")
	_, err = svc.Update(context.Background(), project.ID, UpdateProjectInput{}, strings.NewReader("new"), "new.png")
	require.Error(t, err)
	require.Equal(t, []string{"stored-2-new.png"}, files.deletedFiles())

	kept, err := repo.FindByID(project.ID, false)
	require.NoError(t, err)
	require.Equal(t, "/uploads/stored-1-old.png", kept.ImageURL)
}

func TestProjectService_UpdateWithoutImageKeepsFile(t *testing.T) {
	repo := newFakeProjectRepo()
	files := &fakeStorage{}
	svc := newProjectService(repo, files)

	project, err := svc.Create(context.Background(), CreateProjectInput{
		Title:       "App",
		Description: "Desc",
	}, strings.NewReader("old"), "old.png")
	require.NoError(t, err)

	desc := "New description"
	updated, err := svc.Update(context.Background(), project.ID, UpdateProjectInput{
		Description: &desc,
	}, nil, "")
	require.NoError(t, err)
	require.Equal(t, "New description", updated.Description)
	require.Equal(t, project.ImageURL, updated.ImageURL)
	require.Empty(t, files.deletedFiles())
}

// Soft delete flags the row; the image stays in storage and reads treat the
// project as missing.
func TestProjectService_SoftDelete(t *testing.T) {
	repo := newFakeProjectRepo()
	files := &fakeStorage{}
	svc := newProjectService(repo, files)

	project, err := svc.Create(context.Background(), CreateProjectInput{
		Title:       "App",
		Description: "Desc",
	}, strings.NewReader("old"), "old.png")
	require.NoError(t, err)

	deleted, err := svc.Delete(project.ID)
	require.NoError(t, err)
	require.True(t, deleted.IsDeleted)
	require.Empty(t, files.deletedFiles())

	_, err = svc.Get(project.ID)
	require.ErrorIs(t, err, ErrProjectNotFound)

	_, err = svc.Delete(project.ID)
	require.ErrorIs(t, err, ErrProjectNotFound, "deleting twice must behave like a missing project")

	// The row itself is still there.
	row, err := repo.FindByID(project.ID, true)
	require.NoError(t, err)
	require.True(t, row.IsDeleted)
}

func TestProjectService_UpdateMissingProject(t *testing.T) {
	svc := newProjectService(newFakeProjectRepo(), &fakeStorage{})

	_, err := svc.Update(context.Background(), 99, UpdateProjectInput{}, nil, "")
	require.ErrorIs(t, err, ErrProjectNotFound)
}
