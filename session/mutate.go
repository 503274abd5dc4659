package session

import (
	"coursepanel/models"
	"strconv"

	"github.com/google/uuid"
)

// The helpers below are pure (document in, document out); the Session
// methods wrap them with locking and the dirty flag.

// moveCourse returns a copy of the slice with the element at from inserted
// at to. IDs are untouched: reordering changes positions, never identity.
func moveCourse(courses []models.Course, from, to int) []models.Course {
	out := make([]models.Course, 0, len(courses))
	out = append(out, courses...)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	item := out[from]
	out = append(out[:from], out[from+1:]...)
	rest := make([]models.Course, 0, len(out)+1)
	rest = append(rest, out[:to]...)
	rest = append(rest, item)
	rest = append(rest, out[to:]...)
	return rest
}

func nextCourseID(courses []models.Course) int {
	max := 0
	for _, c := range courses {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

func newCourse(id int) models.Course {
	return models.Course{
		ID:         id,
		Title:      "Новый курс",
		School:     "Название школы",
		Url:        "#",
		Price:      0,
		Format:     "Онлайн",
		Duration:   "1 месяц",
		Document:   "Сертификат",
		ForWhom:    "Для всех",
		Skills:     []string{"Навык 1"},
		Advantages: []string{"Преимущество 1"},
	}
}

func newPage(ordinal int) models.SitePage {
	inMenu := true
	return models.SitePage{
		ID:         "page-" + uuid.NewString(),
		Slug:       "new-page-" + strconv.Itoa(ordinal),
		Title:      "Новая страница",
		MenuLabel:  "Новая страница",
		ShowInMenu: &inMenu,
		MetaData:   models.MetaData{Title: "Новая страница"},
	}
}

// AddCourse appends a fresh course with the next free ID and returns it
func (s *Session) AddCourse() models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	course := newCourse(nextCourseID(s.doc.Courses))
	s.doc.Courses = append(s.doc.Courses, course)
	s.modified = true
	return course
}

// ReplaceCourse overwrites the course with the given ID, preserving the ID
func (s *Session) ReplaceCourse(id int, course models.Course) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Courses {
		if s.doc.Courses[i].ID == id {
			course.ID = id
			s.doc.Courses[i] = course
			s.modified = true
			return true
		}
	}
	return false
}

// RemoveCourse deletes the course with the given ID
func (s *Session) RemoveCourse(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Courses {
		if s.doc.Courses[i].ID == id {
			s.doc.Courses = append(s.doc.Courses[:i], s.doc.Courses[i+1:]...)
			s.modified = true
			return true
		}
	}
	return false
}

// ReorderCourses moves the course at position from to position to
func (s *Session) ReorderCourses(from, to int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if from < 0 || from >= len(s.doc.Courses) || to < 0 || to >= len(s.doc.Courses) {
		return false
	}
	s.doc.Courses = moveCourse(s.doc.Courses, from, to)
	s.modified = true
	return true
}

// AddPage appends a fresh SitePage with default metadata and returns it
func (s *Session) AddPage() models.SitePage {
	s.mu.Lock()
	defer s.mu.Unlock()
	page := newPage(len(s.doc.Pages) + 1)
	s.doc.Pages = append(s.doc.Pages, page)
	s.modified = true
	return page
}

// DuplicatePage deep-copies the page with the given ID under a new id and
// a "-copy" slug. Returns the copy and whether the source was found.
func (s *Session) DuplicatePage(id string) (models.SitePage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Pages {
		if s.doc.Pages[i].ID != id {
			continue
		}
		dup := clonePage(s.doc.Pages[i])
		dup.ID = "page-" + uuid.NewString()
		dup.Slug = dup.Slug + "-copy"
		dup.Title = dup.Title + " (копия)"
		dup.MenuLabel = dup.MenuLabel + " (копия)"
		s.doc.Pages = append(s.doc.Pages, dup)
		s.modified = true
		return dup, true
	}
	return models.SitePage{}, false
}

// UpdatePage overwrites the page with the given ID, preserving the ID
func (s *Session) UpdatePage(id string, page models.SitePage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Pages {
		if s.doc.Pages[i].ID == id {
			page.ID = id
			s.doc.Pages[i] = page
			s.modified = true
			return true
		}
	}
	return false
}

// RemovePage deletes the page with the given ID
func (s *Session) RemovePage(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Pages {
		if s.doc.Pages[i].ID == id {
			s.doc.Pages = append(s.doc.Pages[:i], s.doc.Pages[i+1:]...)
			s.modified = true
			return true
		}
	}
	return false
}

// AddLegalPage appends a fresh legal page and returns it
func (s *Session) AddLegalPage() models.LegalPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	page := models.LegalPage{
		ID:           "legal-" + uuid.NewString(),
		Slug:         "legal-" + strconv.Itoa(len(s.doc.LegalPages)+1),
		Title:        "Новая страница",
		ShowInFooter: true,
		Sections:     []models.LegalSection{{Title: "1. Общие положения", Content: "Текст..."}},
	}
	s.doc.LegalPages = append(s.doc.LegalPages, page)
	s.modified = true
	return page
}

// UpdateLegalPage overwrites the legal page with the given ID
func (s *Session) UpdateLegalPage(id string, page models.LegalPage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.LegalPages {
		if s.doc.LegalPages[i].ID == id {
			page.ID = id
			s.doc.LegalPages[i] = page
			s.modified = true
			return true
		}
	}
	return false
}

// RemoveLegalPage deletes the legal page with the given ID
func (s *Session) RemoveLegalPage(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.LegalPages {
		if s.doc.LegalPages[i].ID == id {
			s.doc.LegalPages = append(s.doc.LegalPages[:i], s.doc.LegalPages[i+1:]...)
			s.modified = true
			return true
		}
	}
	return false
}

func clonePage(p models.SitePage) models.SitePage {
	doc := models.ContentDocument{Pages: []models.SitePage{p}}
	return doc.Clone().Pages[0]
}
