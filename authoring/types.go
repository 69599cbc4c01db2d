package authoring

import "time"

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

const (
	CourseTypeFree     = "free"
	CourseTypeFreemium = "freemium"
	CourseTypePaid     = "paid"
)

const (
	ContentTypeVideo       = "video"
	ContentTypeInteractive = "interactive"
)

const (
	QuestionTypeMCQ         = "mcq"
	QuestionTypeTrueFalse   = "truefalse"
	QuestionTypeShortAnswer = "shortanswer"
)

// Course is the root aggregate edited during an authoring session. The
// document store persists it as a single unit; modules, lessons and quizzes
// are owned, never shared.
type Course struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	Category      string                 `json:"category"`
	Subcategory   string                 `json:"subcategory"`
	Languages     []string               `json:"languages"`
	Summary       string                 `json:"summary"`
	Objectives    []string               `json:"objectives"`
	Modules       []Module               `json:"modules"`
	Translations  map[string]Translation `json:"translations"`
	Accessibility Accessibility          `json:"accessibility"`
	Pricing       Pricing                `json:"pricing"`
	Status        string                 `json:"status"`
	OutlineURL    string                 `json:"outline_url,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

type Module struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Lessons     []Lesson `json:"lessons"`
	Quizzes     []Quiz   `json:"quizzes"`
}

type Lesson struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	ContentType string             `json:"contentType"`
	Content     *ContentDescriptor `json:"content"`
	Description string             `json:"description"`
}

type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// Question is polymorphic over Type. Options is populated for mcq,
// CorrectAnswer for truefalse (nil while unset) and AcceptedAnswers for
// shortanswer.
type Question struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	Text            string   `json:"text"`
	Options         []Option `json:"options,omitempty"`
	CorrectAnswer   *bool    `json:"correctAnswer,omitempty"`
	AcceptedAnswers []string `json:"acceptedAnswers,omitempty"`
}

type Option struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// ContentDescriptor is the metadata the upload service reports for a stored
// media asset.
type ContentDescriptor struct {
	URL       string  `json:"url"`
	Thumbnail string  `json:"thumbnail,omitempty"`
	FileName  string  `json:"fileName"`
	FileSize  int64   `json:"fileSize"`
	FileType  string  `json:"fileType"`
	Duration  float64 `json:"duration,omitempty"`
	Width     int     `json:"width,omitempty"`
	Height    int     `json:"height,omitempty"`
}

type Accessibility struct {
	Captions       bool `json:"captions"`
	MobileFriendly bool `json:"mobileFriendly"`
}

type Pricing struct {
	CourseType      string   `json:"courseType"`
	Price           float64  `json:"price"`
	FreemiumContent []string `json:"freemiumContent"`
}

// Translation mirrors the primary-language content for one target language.
// It is additive display data and never authoritative over the course itself.
type Translation struct {
	Title      string              `json:"title"`
	Summary    string              `json:"summary"`
	Objectives []string            `json:"objectives"`
	Modules    []ModuleTranslation `json:"modules"`
}

type ModuleTranslation struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Lessons     []TitleTranslation `json:"lessons"`
	Quizzes     []TitleTranslation `json:"quizzes"`
}

type TitleTranslation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PrimaryLanguage is languages[0]; it cannot be removed from the course.
func (c *Course) PrimaryLanguage() string {
	if len(c.Languages) == 0 {
		return ""
	}
	return c.Languages[0]
}

func (c *Course) TotalLessons() int {
	total := 0
	for _, m := range c.Modules {
		total += len(m.Lessons)
	}
	return total
}

func (c *Course) TotalQuizzes() int {
	total := 0
	for _, m := range c.Modules {
		total += len(m.Quizzes)
	}
	return total
}

// NewCourse returns the empty-draft template a fresh wizard starts from.
func NewCourse() Course {
	return Course{
		Languages:    []string{"English"},
		Objectives:   []string{},
		Modules:      []Module{},
		Translations: map[string]Translation{},
		Accessibility: Accessibility{
			Captions:       false,
			MobileFriendly: true,
		},
		Pricing: Pricing{
			CourseType:      CourseTypeFree,
			Price:           0,
			FreemiumContent: []string{},
		},
		Status: StatusDraft,
	}
}
