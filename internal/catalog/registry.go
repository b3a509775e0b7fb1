package catalog

import "fmt"

// registry holds the battery with precomputed indices.
// Declaration order is preserved everywhere: category display order and
// question order within a category matter for the quiz flow and for
// reproducible iteration, though not for the scoring math itself.
type registry struct {
	categories []Category
	questions  []Question
	tiers      []TierEntry

	categoryByID map[string]*Category
	questionByID map[string]*Question
	byCategory   map[string][]Question
}

// reg is the package-level registry singleton, set by init() in seed.go.
var reg *registry

func buildRegistry(categories []Category, questions []Question, tiers []TierEntry) *registry {
	r := &registry{
		categories:   categories,
		questions:    questions,
		tiers:        tiers,
		categoryByID: make(map[string]*Category, len(categories)),
		questionByID: make(map[string]*Question, len(questions)),
		byCategory:   make(map[string][]Question),
	}
	for i := range r.categories {
		r.categoryByID[r.categories[i].ID] = &r.categories[i]
	}
	for i := range r.questions {
		q := &r.questions[i]
		r.questionByID[q.ID] = q
		r.byCategory[q.Category] = append(r.byCategory[q.Category], *q)
	}
	return r
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	out := make([]Category, len(reg.categories))
	copy(out, reg.categories)
	return out
}

// GetCategory returns a category by ID, or an error if not found.
func GetCategory(id string) (Category, error) {
	c, ok := reg.categoryByID[id]
	if !ok {
		return Category{}, fmt.Errorf("category not found: %q", id)
	}
	return *c, nil
}

// Questions returns the full battery in declaration order.
func Questions() []Question {
	out := make([]Question, len(reg.questions))
	copy(out, reg.questions)
	return out
}

// GetQuestion returns a question by ID, or an error if not found.
func GetQuestion(id string) (Question, error) {
	q, ok := reg.questionByID[id]
	if !ok {
		return Question{}, fmt.Errorf("question not found: %q", id)
	}
	return *q, nil
}

// QuestionsFor returns the questions of a category in declaration order.
func QuestionsFor(categoryID string) []Question {
	qs := reg.byCategory[categoryID]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// QuestionCount returns the total number of questions in the battery.
func QuestionCount() int {
	return len(reg.questions)
}

// Validate re-runs the structural checks against the seeded battery.
func Validate() error {
	return validateCatalog(reg.categories, reg.questions, reg.tiers)
}
