package session

import (
	"coursepanel/database"
	"coursepanel/models"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *database.ContentStore {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return database.NewContentStore(db)
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return New(newTestStore(t))
}

func strPtr(s string) *string { return &s }

func TestNew_LoadsDefaultOnEmptyStore(t *testing.T) {
	s := newTestSession(t)

	doc := s.Content()
	assert.Equal(t, models.DefaultContent(), doc)
	assert.False(t, s.IsModified())
}

func TestContent_ReturnsCopy(t *testing.T) {
	s := newTestSession(t)

	doc := s.Content()
	doc.PageTitle = "mutated copy"

	assert.NotEqual(t, "mutated copy", s.Content().PageTitle)
}

func TestUpdateContent_MarksDirty(t *testing.T) {
	s := newTestSession(t)

	s.UpdateContent(models.ContentPatch{PageTitle: strPtr("Новый заголовок")})

	assert.True(t, s.IsModified())
	assert.Equal(t, "Новый заголовок", s.Content().PageTitle)
}

func TestSaveNow_PersistsAndClearsDirty(t *testing.T) {
	store := newTestStore(t)
	s := New(store)

	s.UpdateContent(models.ContentPatch{PageTitle: strPtr("Сохранённый")})
	require.True(t, s.SaveNow())
	assert.False(t, s.IsModified())

	// A fresh session over the same store sees the committed document
	reloaded := New(store)
	assert.Equal(t, "Сохранённый", reloaded.Content().PageTitle)
}

func TestResetToDefault_RestoresSeedWithoutSaving(t *testing.T) {
	store := newTestStore(t)
	s := New(store)

	s.UpdateContent(models.ContentPatch{PageTitle: strPtr("Изменено")})
	require.True(t, s.SaveNow())

	s.ResetToDefault()
	assert.True(t, s.IsModified())
	assert.Equal(t, models.DefaultContent(), s.Content())

	// The committed blob keeps the saved title until the reset is saved too
	assert.Equal(t, "Изменено", New(store).Content().PageTitle)
}

func TestImportJSON_FullReplacesWithBackfill(t *testing.T) {
	s := newTestSession(t)

	ok := s.ImportJSON(`{"pageTitle": "Импортировано"}`, ImportTargetFull)
	require.True(t, ok)

	doc := s.Content()
	assert.Equal(t, "Импортировано", doc.PageTitle)
	assert.Equal(t, "https://example.com/", doc.MetaData.CanonicalUrl)
	assert.True(t, s.IsModified())
}

func TestImportJSON_MainMergesAdditively(t *testing.T) {
	s := newTestSession(t)
	before := s.Content()

	ok := s.ImportJSON(`{"introText": "Новое вступление"}`, ImportTargetMain)
	require.True(t, ok)

	doc := s.Content()
	assert.Equal(t, "Новое вступление", doc.IntroText)
	assert.Equal(t, before.Courses, doc.Courses)
}

func TestImportJSON_PageTarget(t *testing.T) {
	s := newTestSession(t)
	page := s.AddPage()

	ok := s.ImportJSON(`{"title": "Импорт в страницу", "id": "hijack"}`, page.Slug)
	require.True(t, ok)

	pages := s.Content().Pages
	require.Len(t, pages, 1)
	assert.Equal(t, "Импорт в страницу", pages[0].Title)
	assert.Equal(t, page.ID, pages[0].ID)
	assert.Equal(t, page.Slug, pages[0].Slug)
}

func TestImportJSON_RejectsWithoutMutation(t *testing.T) {
	s := newTestSession(t)
	before := s.Content()

	assert.False(t, s.ImportJSON("{broken", ImportTargetFull))
	assert.False(t, s.ImportJSON(`{"title": "x"}`, "no-such-slug"))
	assert.Equal(t, before, s.Content())
	assert.False(t, s.IsModified())
}

func TestExportJSON_RoundTripsThroughImport(t *testing.T) {
	s := newTestSession(t)
	s.UpdateContent(models.ContentPatch{PageTitle: strPtr("Экспортный тест")})
	s.AddCourse()
	want := s.Content()

	text, err := s.ExportJSON()
	require.NoError(t, err)

	restored := newTestSession(t)
	require.True(t, restored.ImportJSON(text, ImportTargetFull))
	assert.Equal(t, want, restored.Content())
}

func TestAddCourse_AssignsNextFreeID(t *testing.T) {
	s := newTestSession(t)

	course := s.AddCourse()
	assert.Equal(t, 2, course.ID)
	assert.Equal(t, "Новый курс", course.Title)

	// Removing a middle course never frees its ID for reuse
	require.True(t, s.RemoveCourse(1))
	next := s.AddCourse()
	assert.Equal(t, 3, next.ID)
}

func TestReplaceCourse_PreservesID(t *testing.T) {
	s := newTestSession(t)

	replacement := models.Course{ID: 99, Title: "Переименованный", School: "Школа", Url: "#"}
	require.True(t, s.ReplaceCourse(1, replacement))

	courses := s.Content().Courses
	require.Len(t, courses, 1)
	assert.Equal(t, 1, courses[0].ID)
	assert.Equal(t, "Переименованный", courses[0].Title)

	assert.False(t, s.ReplaceCourse(42, replacement))
}

func TestReorderCourses_KeepsIdentity(t *testing.T) {
	s := newTestSession(t)
	s.AddCourse()
	s.AddCourse()

	require.True(t, s.ReorderCourses(0, 2))

	ids := []int{}
	for _, c := range s.Content().Courses {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int{2, 3, 1}, ids)

	assert.False(t, s.ReorderCourses(0, 5))
}

func TestDuplicatePage(t *testing.T) {
	s := newTestSession(t)
	page := s.AddPage()

	dup, ok := s.DuplicatePage(page.ID)
	require.True(t, ok)

	assert.NotEqual(t, page.ID, dup.ID)
	assert.Equal(t, page.Slug+"-copy", dup.Slug)
	assert.Equal(t, page.Title+" (копия)", dup.Title)
	assert.Equal(t, page.MenuLabel+" (копия)", dup.MenuLabel)
	assert.Len(t, s.Content().Pages, 2)

	_, ok = s.DuplicatePage("missing")
	assert.False(t, ok)
}

func TestLegalPageLifecycle(t *testing.T) {
	s := newTestSession(t)

	page := s.AddLegalPage()
	assert.True(t, page.ShowInFooter)

	page.Title = "Оферта"
	require.True(t, s.UpdateLegalPage(page.ID, page))
	require.True(t, s.RemoveLegalPage(page.ID))

	// Only the seeded privacy page remains
	assert.Len(t, s.Content().LegalPages, 1)
}
