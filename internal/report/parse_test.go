package report

import (
	"reflect"
	"testing"
)

func TestParse_MajorSection(t *testing.T) {
	blocks := Parse("3. 학습 전략 분석")
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	ms, ok := blocks[0].(MajorSection)
	if !ok {
		t.Fatalf("got %T, want MajorSection", blocks[0])
	}
	if ms.Heading != "3. 학습 전략 분석" {
		t.Errorf("got heading %q", ms.Heading)
	}
}

func TestParse_MajorSection_RequiresSpace(t *testing.T) {
	// "3.학습" without a space after the period is not a section heading.
	blocks := Parse("3.학습 전략 분석")
	if _, ok := blocks[0].(PlainParagraph); !ok {
		t.Errorf("got %T, want PlainParagraph", blocks[0])
	}
}

func TestParse_SubSection(t *testing.T) {
	blocks := Parse("① 학습 시간의 질")
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	ss, ok := blocks[0].(SubSection)
	if !ok {
		t.Fatalf("got %T, want SubSection", blocks[0])
	}
	if ss.Heading != "① 학습 시간의 질" {
		t.Errorf("got heading %q", ss.Heading)
	}
}

func TestParse_LabeledParagraph(t *testing.T) {
	blocks := Parse("판정: 우수")
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	lp, ok := blocks[0].(LabeledParagraph)
	if !ok {
		t.Fatalf("got %T, want LabeledParagraph", blocks[0])
	}
	if lp.Label != "판정:" {
		t.Errorf("got label %q, want %q", lp.Label, "판정:")
	}
	if lp.Body != "우수" {
		t.Errorf("got body %q, want %q", lp.Body, "우수")
	}
}

func TestParse_AllLabels(t *testing.T) {
	raw := "판정: A\n데이터 근거: B\nSGS 분석 코멘트: C\n즉시 실행 처방: D"
	blocks := Parse(raw)
	if len(blocks) != 4 {
		t.Fatalf("got %d blocks, want 4", len(blocks))
	}
	wantLabels := []string{"판정:", "데이터 근거:", "SGS 분석 코멘트:", "즉시 실행 처방:"}
	for i, want := range wantLabels {
		lp, ok := blocks[i].(LabeledParagraph)
		if !ok {
			t.Fatalf("block %d: got %T, want LabeledParagraph", i, blocks[i])
		}
		if lp.Label != want {
			t.Errorf("block %d: got label %q, want %q", i, lp.Label, want)
		}
	}
}

func TestParse_SkipsBlankAndRules(t *testing.T) {
	raw := "\n---\n   \n첫 문단\n---\n"
	blocks := Parse(raw)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if _, ok := blocks[0].(PlainParagraph); !ok {
		t.Errorf("got %T, want PlainParagraph", blocks[0])
	}
}

func TestParse_StripsMarkup(t *testing.T) {
	blocks := Parse("**1. 종합 판정**")
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	ms, ok := blocks[0].(MajorSection)
	if !ok {
		t.Fatalf("got %T, want MajorSection", blocks[0])
	}
	if ms.Heading != "1. 종합 판정" {
		t.Errorf("got heading %q", ms.Heading)
	}
}

func TestParse_FutureScenario_CollectsBody(t *testing.T) {
	raw := "⚡ 미래 시뮬레이션 : 6개월 후\n첫 번째 전개\n두 번째 전개\n\n다음 문단"
	blocks := Parse(raw)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	fs, ok := blocks[0].(FutureScenario)
	if !ok {
		t.Fatalf("got %T, want FutureScenario", blocks[0])
	}
	if fs.Headline != "6개월 후" {
		t.Errorf("got headline %q", fs.Headline)
	}
	want := []string{"첫 번째 전개", "두 번째 전개"}
	if !reflect.DeepEqual(fs.Body, want) {
		t.Errorf("got body %v, want %v", fs.Body, want)
	}
	if _, ok := blocks[1].(PlainParagraph); !ok {
		t.Errorf("block 1: got %T, want PlainParagraph", blocks[1])
	}
}

func TestParse_FutureScenario_EndedByClassifiedLine(t *testing.T) {
	raw := "⚡ 미래 시뮬레이션 : 전망\n본문 한 줄\n2. 다음 섹션"
	blocks := Parse(raw)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	fs, ok := blocks[0].(FutureScenario)
	if !ok {
		t.Fatalf("got %T, want FutureScenario", blocks[0])
	}
	if len(fs.Body) != 1 || fs.Body[0] != "본문 한 줄" {
		t.Errorf("got body %v", fs.Body)
	}
	if _, ok := blocks[1].(MajorSection); !ok {
		t.Errorf("block 1: got %T, want MajorSection", blocks[1])
	}
}

func TestParse_StatusBanner(t *testing.T) {
	blocks := Parse("상태 위치: 상위 12%")
	sb, ok := blocks[0].(StatusBanner)
	if !ok {
		t.Fatalf("got %T, want StatusBanner", blocks[0])
	}
	if sb.Text != "상위 12%" {
		t.Errorf("got text %q", sb.Text)
	}
}

func TestParse_Callout(t *testing.T) {
	blocks := Parse("▶ 핵심 권고 사항")
	c, ok := blocks[0].(Callout)
	if !ok {
		t.Fatalf("got %T, want Callout", blocks[0])
	}
	if c.Text != "핵심 권고 사항" {
		t.Errorf("got text %q", c.Text)
	}
}

func TestParse_PriorityOrder(t *testing.T) {
	// A numbered heading that also mentions a label must classify as the
	// section, not the label.
	blocks := Parse("1. 판정: 개요")
	if _, ok := blocks[0].(MajorSection); !ok {
		t.Errorf("got %T, want MajorSection", blocks[0])
	}
}

func TestParse_PreservesOrder(t *testing.T) {
	raw := "1. 개요\n① 학습 시간의 질\n판정: 우수\n일반 설명입니다."
	blocks := Parse(raw)
	wantTypes := []string{"report.MajorSection", "report.SubSection", "report.LabeledParagraph", "report.PlainParagraph"}
	if len(blocks) != len(wantTypes) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(wantTypes))
	}
	for i, want := range wantTypes {
		if got := reflect.TypeOf(blocks[i]).String(); got != want {
			t.Errorf("block %d: got %s, want %s", i, got, want)
		}
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if blocks := Parse(""); len(blocks) != 0 {
		t.Errorf("got %d blocks for empty input, want 0", len(blocks))
	}
}

func TestParse_NeverPanicsOnMalformed(t *testing.T) {
	inputs := []string{
		"8. 범위 밖 숫자",
		"⑦ 범위 밖 원문자",
		"판정:",
		"⚡ 미래 시뮬레이션 :",
		"***###",
	}
	for _, in := range inputs {
		_ = Parse(in)
	}
}
