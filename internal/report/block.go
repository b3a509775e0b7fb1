package report

// Block is one structural element of a parsed narrative report.
// Concrete types form a closed set; consumers switch on the type.
type Block interface {
	isBlock()
}

// MajorSection is a top-level numbered heading ("1. " through "7. ").
type MajorSection struct {
	Heading string
}

// SubSection is a per-category heading opened by a circled numeral (①-⑥).
type SubSection struct {
	Heading string
}

// LabeledParagraph is a body line opened by one of the fixed analysis
// labels, e.g. "판정:" or "데이터 근거:".
type LabeledParagraph struct {
	Label string
	Body  string
}

// FutureScenario is the projection block opened by the lightning sentinel.
// Unclassified lines that follow it become body lines until a blank or
// classified line ends the block.
type FutureScenario struct {
	Headline string
	Body     []string
}

// StatusBanner is the standing line opened by "상태 위치:".
type StatusBanner struct {
	Text string
}

// Callout is a highlighted line opened by the "▶" glyph.
type Callout struct {
	Text string
}

// PlainParagraph is any line no other rule claims.
type PlainParagraph struct {
	Text string
}

func (MajorSection) isBlock()     {}
func (SubSection) isBlock()       {}
func (LabeledParagraph) isBlock() {}
func (FutureScenario) isBlock()   {}
func (StatusBanner) isBlock()     {}
func (Callout) isBlock()          {}
func (PlainParagraph) isBlock()   {}
