package authoring

// Clone returns a deep copy of the course so snapshots handed to callers
// never alias the session's live document.
func (c Course) Clone() Course {
	out := c
	out.Languages = append([]string(nil), c.Languages...)
	out.Objectives = append([]string(nil), c.Objectives...)
	out.Pricing.FreemiumContent = append([]string(nil), c.Pricing.FreemiumContent...)
	out.Modules = make([]Module, len(c.Modules))
	for i, m := range c.Modules {
		out.Modules[i] = cloneModule(m)
	}
	out.Translations = make(map[string]Translation, len(c.Translations))
	for lang, t := range c.Translations {
		out.Translations[lang] = cloneTranslation(t)
	}
	return out
}

func cloneModule(m Module) Module {
	out := m
	out.Lessons = make([]Lesson, len(m.Lessons))
	for i, l := range m.Lessons {
		out.Lessons[i] = cloneLesson(l)
	}
	out.Quizzes = make([]Quiz, len(m.Quizzes))
	for i, q := range m.Quizzes {
		out.Quizzes[i] = cloneQuiz(q)
	}
	return out
}

func cloneLesson(l Lesson) Lesson {
	out := l
	if l.Content != nil {
		content := *l.Content
		out.Content = &content
	}
	return out
}

func cloneQuiz(q Quiz) Quiz {
	out := q
	out.Questions = cloneQuestions(q.Questions)
	return out
}

func cloneQuestions(questions []Question) []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = q
		out[i].Options = append([]Option(nil), q.Options...)
		out[i].AcceptedAnswers = append([]string(nil), q.AcceptedAnswers...)
		if q.CorrectAnswer != nil {
			answer := *q.CorrectAnswer
			out[i].CorrectAnswer = &answer
		}
	}
	return out
}

func cloneTranslation(t Translation) Translation {
	out := t
	out.Objectives = append([]string(nil), t.Objectives...)
	out.Modules = make([]ModuleTranslation, len(t.Modules))
	for i, m := range t.Modules {
		out.Modules[i] = m
		out.Modules[i].Lessons = append([]TitleTranslation(nil), m.Lessons...)
		out.Modules[i].Quizzes = append([]TitleTranslation(nil), m.Quizzes...)
	}
	return out
}
