package authoring

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mastaskillz/course_studio/utils"
)

// ErrPrimaryLanguage is returned when a caller tries to remove the course's
// primary language (languages[0]).
var ErrPrimaryLanguage = errors.New("cannot remove primary course language")

// Session owns the one course being authored. Every structural edit goes
// through it so timestamp bookkeeping and shape invariants stay in one place.
// A generation counter guards the async load/save round-trips: every mutation
// bumps it, and a response that arrives after the document moved on is
// discarded instead of clobbering the newer state.
type Session struct {
	mu     sync.Mutex
	store  CourseStore
	course Course
	gen    uint64
}

func NewSession(store CourseStore) *Session {
	return &Session{
		store:  store,
		course: NewCourse(),
	}
}

// Course returns a deep-copied snapshot of the document.
func (s *Session) Course() Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.course.Clone()
}

// Reset replaces the document with the empty-draft template and drops any
// pending identifier. In-flight load/save responses from before the reset
// are discarded when they land.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.course = NewCourse()
	s.gen++
}

// Load fetches a course by id and replaces the in-memory document. The prior
// state is kept on any failure.
func (s *Session) Load(ctx context.Context, id string) error {
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	course, err := s.store.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load course %s: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		// The session was reset or reloaded while the fetch was in flight.
		return nil
	}
	s.course = course
	s.gen++
	return nil
}

// Patch shallow-merges course-level fields. It does not validate; semantic
// checks belong to the step validators.
func (s *Session) Patch(p CoursePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mergeCourse(&s.course, p)
	s.touch()
}

// AddLanguage appends a language unless it is already present. Reports
// whether the list changed.
func (s *Session) AddLanguage(language string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.course.Languages {
		if l == language {
			return false
		}
	}
	s.course.Languages = append(s.course.Languages, language)
	s.touch()
	return true
}

// RemoveLanguage drops a secondary language and its translation bundle.
// Removing the primary language is refused, so the list never empties.
func (s *Session) RemoveLanguage(language string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if language == s.course.PrimaryLanguage() {
		return ErrPrimaryLanguage
	}
	for i, l := range s.course.Languages {
		if l == language {
			s.course.Languages = append(s.course.Languages[:i], s.course.Languages[i+1:]...)
			delete(s.course.Translations, language)
			s.touch()
			return nil
		}
	}
	return nil
}

// ApplyTranslation stores a translation bundle and makes sure its language
// appears in the course language list.
func (s *Session) ApplyTranslation(language string, t Translation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.course.Translations[language] = cloneTranslation(t)
	found := false
	for _, l := range s.course.Languages {
		if l == language {
			found = true
			break
		}
	}
	if !found {
		s.course.Languages = append(s.course.Languages, language)
	}
	s.touch()
}

// ToggleFreemium flips free-preview membership for a module or lesson and
// reports the new state.
func (s *Session) ToggleFreemium(contentType, contentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := ContentKey(contentType, contentID)
	list := s.course.Pricing.FreemiumContent
	for i, k := range list {
		if k == key {
			s.course.Pricing.FreemiumContent = append(list[:i], list[i+1:]...)
			s.touch()
			return false
		}
	}
	s.course.Pricing.FreemiumContent = append(list, key)
	s.touch()
	return true
}

// AddModule creates an empty module, folds in caller overrides and appends
// it. Returns the new module id.
func (s *Session) AddModule(p ModulePatch) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	module := Module{
		ID:      utils.NewContentID("module"),
		Lessons: []Lesson{},
		Quizzes: []Quiz{},
	}
	mergeModule(&module, p)
	s.course.Modules = append(s.course.Modules, module)
	s.touch()
	return module.ID
}

// UpdateModule merges fields into the addressed module. A missing id is a
// no-op and leaves updatedAt alone.
func (s *Session) UpdateModule(moduleID string, p ModulePatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.findModule(moduleID)
	if m == nil {
		return false
	}
	mergeModule(m, p)
	s.touch()
	return true
}

// DeleteModule removes the module together with all its lessons and quizzes.
func (s *Session) DeleteModule(moduleID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.course.Modules {
		if m.ID == moduleID {
			s.course.Modules = append(s.course.Modules[:i], s.course.Modules[i+1:]...)
			s.touch()
			return true
		}
	}
	return false
}

func (s *Session) AddLesson(moduleID string, p LessonPatch) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.findModule(moduleID)
	if m == nil {
		return "", false
	}
	lesson := Lesson{
		ID:          utils.NewContentID("lesson"),
		ContentType: ContentTypeVideo,
	}
	mergeLesson(&lesson, p)
	m.Lessons = append(m.Lessons, lesson)
	s.touch()
	return lesson.ID, true
}

func (s *Session) UpdateLesson(moduleID, lessonID string, p LessonPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.findModule(moduleID)
	if m == nil {
		return false
	}
	for i := range m.Lessons {
		if m.Lessons[i].ID == lessonID {
			mergeLesson(&m.Lessons[i], p)
			s.touch()
			return true
		}
	}
	return false
}

func (s *Session) DeleteLesson(moduleID, lessonID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.findModule(moduleID)
	if m == nil {
		return false
	}
	for i := range m.Lessons {
		if m.Lessons[i].ID == lessonID {
			m.Lessons = append(m.Lessons[:i], m.Lessons[i+1:]...)
			s.touch()
			return true
		}
	}
	return false
}

func (s *Session) AddQuiz(moduleID string, p QuizPatch) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.findModule(moduleID)
	if m == nil {
		return "", false
	}
	quiz := Quiz{
		ID:        utils.NewContentID("quiz"),
		Questions: []Question{},
	}
	mergeQuiz(&quiz, p)
	m.Quizzes = append(m.Quizzes, quiz)
	s.touch()
	return quiz.ID, true
}

func (s *Session) UpdateQuiz(moduleID, quizID string, p QuizPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.findQuiz(moduleID, quizID)
	if q == nil {
		return false
	}
	mergeQuiz(q, p)
	s.touch()
	return true
}

func (s *Session) DeleteQuiz(moduleID, quizID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.findModule(moduleID)
	if m == nil {
		return false
	}
	for i := range m.Quizzes {
		if m.Quizzes[i].ID == quizID {
			m.Quizzes = append(m.Quizzes[:i], m.Quizzes[i+1:]...)
			s.touch()
			return true
		}
	}
	return false
}

// AddQuestion appends a fresh question of the given type to a quiz. MCQ
// questions start with four options, none marked correct.
func (s *Session) AddQuestion(moduleID, quizID, questionType string) (Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.findQuiz(moduleID, quizID)
	if q == nil {
		return Question{}, false
	}
	question := newQuestion(questionType)
	q.Questions = append(q.Questions, question)
	s.touch()
	return question, true
}

func (s *Session) DeleteQuestion(moduleID, quizID, questionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.findQuiz(moduleID, quizID)
	if q == nil {
		return false
	}
	for i := range q.Questions {
		if q.Questions[i].ID == questionID {
			q.Questions = append(q.Questions[:i], q.Questions[i+1:]...)
			s.touch()
			return true
		}
	}
	return false
}

// SetCorrectOption marks one MCQ option correct and every sibling incorrect.
// Exclusivity is enforced here rather than left to callers.
func (s *Session) SetCorrectOption(moduleID, quizID, questionID, optionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.findQuiz(moduleID, quizID)
	if q == nil {
		return false
	}
	for i := range q.Questions {
		question := &q.Questions[i]
		if question.ID != questionID || question.Type != QuestionTypeMCQ {
			continue
		}
		found := false
		for j := range question.Options {
			if question.Options[j].ID == optionID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
		for j := range question.Options {
			question.Options[j].IsCorrect = question.Options[j].ID == optionID
		}
		s.touch()
		return true
	}
	return false
}

// Save stamps the lifecycle fields and persists the document, creating it on
// first save and updating afterwards. On success the in-memory course is
// replaced with the store's returned representation; on failure it is left
// untouched. A save that completes after the session moved on (any newer
// edit, a reset or a reload) still returns the persisted course but does not
// install it.
func (s *Session) Save(ctx context.Context, publish bool) (Course, error) {
	s.mu.Lock()
	snapshot := s.course.Clone()
	gen := s.gen
	s.mu.Unlock()

	if publish {
		snapshot.Status = StatusPublished
	} else {
		snapshot.Status = StatusDraft
	}
	now := time.Now().UTC()
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = now
	}
	snapshot.UpdatedAt = now

	var saved Course
	var err error
	if snapshot.ID == "" {
		saved, err = s.store.Create(ctx, snapshot)
	} else {
		saved, err = s.store.Update(ctx, snapshot.ID, snapshot)
	}
	if err != nil {
		return Course{}, fmt.Errorf("save course: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == gen {
		s.course = saved.Clone()
		s.gen++
	}
	return saved, nil
}

func (s *Session) findModule(moduleID string) *Module {
	for i := range s.course.Modules {
		if s.course.Modules[i].ID == moduleID {
			return &s.course.Modules[i]
		}
	}
	return nil
}

func (s *Session) findQuiz(moduleID, quizID string) *Quiz {
	m := s.findModule(moduleID)
	if m == nil {
		return nil
	}
	for i := range m.Quizzes {
		if m.Quizzes[i].ID == quizID {
			return &m.Quizzes[i]
		}
	}
	return nil
}

func (s *Session) touch() {
	s.course.UpdatedAt = time.Now().UTC()
	s.gen++
}

func newQuestion(questionType string) Question {
	id := utils.NewContentID("question")
	switch questionType {
	case QuestionTypeTrueFalse:
		return Question{ID: id, Type: QuestionTypeTrueFalse}
	case QuestionTypeShortAnswer:
		return Question{ID: id, Type: QuestionTypeShortAnswer, AcceptedAnswers: []string{}}
	default:
		options := make([]Option, 4)
		for i := range options {
			options[i] = Option{ID: utils.NewContentID("option")}
		}
		return Question{ID: id, Type: QuestionTypeMCQ, Options: options}
	}
}
