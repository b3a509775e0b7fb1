package report

import (
	"regexp"
	"strings"
)

// Labels recognized for LabeledParagraph blocks, checked in order.
var paragraphLabels = []string{
	"판정:",
	"데이터 근거:",
	"SGS 분석 코멘트:",
	"즉시 실행 처방:",
}

const (
	futureSentinel = "⚡ 미래 시뮬레이션 :"
	bannerSentinel = "상태 위치:"
	calloutGlyph   = "▶"
)

var majorSectionRe = regexp.MustCompile(`^[1-7]\.\s`)

// circledNumerals open per-category sub-sections.
var circledNumerals = []string{"①", "②", "③", "④", "⑤", "⑥"}

// Rule classifies a cleaned line into a block. Match rules run in order and
// the first match wins; the ordering is load-bearing because some patterns
// are prefixes of others. A line no rule claims becomes a PlainParagraph.
type Rule struct {
	Name  string
	Match func(line string) bool
	Build func(line string) Block
}

// DefaultRules returns the classification rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:  "major-section",
			Match: majorSectionRe.MatchString,
			Build: func(line string) Block { return MajorSection{Heading: line} },
		},
		{
			Name: "sub-section",
			Match: func(line string) bool {
				for _, n := range circledNumerals {
					if strings.HasPrefix(line, n) {
						return true
					}
				}
				return false
			},
			Build: func(line string) Block { return SubSection{Heading: line} },
		},
		{
			Name: "labeled-paragraph",
			Match: func(line string) bool {
				return matchLabel(line) != ""
			},
			Build: func(line string) Block {
				label := matchLabel(line)
				return LabeledParagraph{
					Label: label,
					Body:  strings.TrimSpace(strings.TrimPrefix(line, label)),
				}
			},
		},
		{
			Name: "future-scenario",
			Match: func(line string) bool {
				return strings.HasPrefix(line, futureSentinel)
			},
			Build: func(line string) Block {
				return FutureScenario{
					Headline: strings.TrimSpace(strings.TrimPrefix(line, futureSentinel)),
				}
			},
		},
		{
			Name: "status-banner",
			Match: func(line string) bool {
				return strings.HasPrefix(line, bannerSentinel)
			},
			Build: func(line string) Block {
				return StatusBanner{Text: strings.TrimSpace(strings.TrimPrefix(line, bannerSentinel))}
			},
		},
		{
			Name: "callout",
			Match: func(line string) bool {
				return strings.HasPrefix(line, calloutGlyph)
			},
			Build: func(line string) Block {
				return Callout{Text: strings.TrimSpace(strings.TrimPrefix(line, calloutGlyph))}
			},
		},
	}
}

func matchLabel(line string) string {
	for _, l := range paragraphLabels {
		if strings.HasPrefix(line, l) {
			return l
		}
	}
	return ""
}

var markupStripper = strings.NewReplacer("*", "", "#", "")

// cleanLine removes emphasis markup and surrounding whitespace.
func cleanLine(line string) string {
	return strings.TrimSpace(markupStripper.Replace(line))
}

// Parse structures the raw narrative into ordered blocks using the default
// rules. It never fails: unrecognizable lines degrade to plain paragraphs.
func Parse(raw string) []Block {
	return ParseWith(raw, DefaultRules())
}

// ParseWith structures the raw narrative with a custom rule table.
func ParseWith(raw string, rules []Rule) []Block {
	var blocks []Block
	var openScenario *FutureScenario

	flush := func() {
		if openScenario != nil {
			blocks = append(blocks, *openScenario)
			openScenario = nil
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		clean := cleanLine(line)
		if clean == "" || clean == "---" {
			flush()
			continue
		}

		block := classify(clean, rules)
		if block == nil {
			// Unclassified lines inside an open scenario belong to its body.
			if openScenario != nil {
				openScenario.Body = append(openScenario.Body, clean)
				continue
			}
			blocks = append(blocks, PlainParagraph{Text: clean})
			continue
		}

		flush()
		if fs, ok := block.(FutureScenario); ok {
			openScenario = &fs
			continue
		}
		blocks = append(blocks, block)
	}
	flush()
	return blocks
}

// classify returns the first matching rule's block, or nil for no match.
func classify(line string, rules []Rule) Block {
	for _, r := range rules {
		if r.Match(line) {
			return r.Build(line)
		}
	}
	return nil
}
