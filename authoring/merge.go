package authoring

// Partial updates arrive as pointer-field patches and are folded into the
// aggregate by explicit per-entity merges. Nil means "leave unchanged", so a
// patch can set a field to its zero value without clobbering its siblings.

type CoursePatch struct {
	Title         *string        `json:"title"`
	Category      *string        `json:"category"`
	Subcategory   *string        `json:"subcategory"`
	Summary       *string        `json:"summary"`
	Objectives    *[]string      `json:"objectives"`
	Accessibility *Accessibility `json:"accessibility"`
	Pricing       *PricingPatch  `json:"pricing"`
}

type PricingPatch struct {
	CourseType      *string   `json:"courseType"`
	Price           *float64  `json:"price"`
	FreemiumContent *[]string `json:"freemiumContent"`
}

type ModulePatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type LessonPatch struct {
	Title        *string            `json:"title"`
	ContentType  *string            `json:"contentType"`
	Description  *string            `json:"description"`
	Content      *ContentDescriptor `json:"content"`
	ClearContent bool               `json:"clearContent"`
}

type QuizPatch struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Questions   *[]Question `json:"questions"`
}

func mergeCourse(c *Course, p CoursePatch) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.Subcategory != nil {
		c.Subcategory = *p.Subcategory
	}
	if p.Summary != nil {
		c.Summary = *p.Summary
	}
	if p.Objectives != nil {
		c.Objectives = append([]string(nil), (*p.Objectives)...)
	}
	if p.Accessibility != nil {
		c.Accessibility = *p.Accessibility
	}
	if p.Pricing != nil {
		mergePricing(&c.Pricing, *p.Pricing)
	}
}

func mergePricing(pr *Pricing, p PricingPatch) {
	if p.CourseType != nil {
		pr.CourseType = *p.CourseType
	}
	if p.Price != nil {
		pr.Price = *p.Price
	}
	if p.FreemiumContent != nil {
		pr.FreemiumContent = append([]string(nil), (*p.FreemiumContent)...)
	}
	// Free-preview selections only mean something on a freemium course.
	if pr.CourseType != CourseTypeFreemium {
		pr.FreemiumContent = []string{}
	}
}

func mergeModule(m *Module, p ModulePatch) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
}

func mergeLesson(l *Lesson, p LessonPatch) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.ContentType != nil {
		l.ContentType = *p.ContentType
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Content != nil {
		content := *p.Content
		l.Content = &content
	} else if p.ClearContent {
		l.Content = nil
	}
}

func mergeQuiz(q *Quiz, p QuizPatch) {
	if p.Title != nil {
		q.Title = *p.Title
	}
	if p.Description != nil {
		q.Description = *p.Description
	}
	if p.Questions != nil {
		q.Questions = cloneQuestions(*p.Questions)
	}
}
