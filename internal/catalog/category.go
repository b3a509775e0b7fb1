package catalog

// Category is one of the six weighted competency axes measured by the
// diagnostic battery. Weights are relative; scoring normalizes by the
// total weight present, so they need not sum to 100.
type Category struct {
	ID          string
	Name        string
	Weight      float64
	Description string
}

// Question is a single Likert item in the battery. Answers are raw scores
// in [0,4]. When Reverse is set, agreement indicates a negative trait and
// the raw score is inverted (4-raw) before aggregation.
type Question struct {
	ID       string
	Category string
	Text     string
	Reverse  bool
}

// RawScoreMax is the maximum raw answer on the 5-point Likert scale (0-4).
const RawScoreMax = 4
