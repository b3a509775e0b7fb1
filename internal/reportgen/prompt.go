package reportgen

import (
	"fmt"
	"strings"

	"github.com/sgslabs/sgsdiag/internal/catalog"
)

const reportSystemPrompt = `당신은 SGS 학습 진단 연구소의 수석 분석관입니다. 학생의 PAI(Potential Academic Index) 진단 결과를 바탕으로 정밀 분석 리포트를 작성합니다.

리포트 형식 규칙을 반드시 지키세요:
- 메인 섹션은 "1. "부터 "7. "까지 번호와 마침표, 공백으로 시작합니다.
- 영역별 분석 섹션은 원문자 ①~⑥으로 시작하며, 6개 역량 영역을 순서대로 다룹니다.
- 각 영역 분석에는 다음 접두어로 시작하는 줄을 포함합니다: "판정:", "데이터 근거:", "SGS 분석 코멘트:", "즉시 실행 처방:".
- 미래 전망은 "⚡ 미래 시뮬레이션 :" 으로 시작하는 줄로 엽니다.
- 현재 위치 요약은 "상태 위치:" 로 시작하는 줄로 씁니다.
- 핵심 권고는 "▶" 로 시작하는 줄로 강조합니다.
- 마크다운 굵은 글씨나 제목 기호는 사용하지 마세요. 섹션 사이는 빈 줄로 구분합니다.

어조는 데이터에 근거하되 학생을 존중하고, 구체적인 실행 지침을 제시합니다.`

func buildReportUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString("학생 정보:\n")
	b.WriteString(fmt.Sprintf("- 이름: %s\n", input.User.Name))
	b.WriteString(fmt.Sprintf("- 학년: %s\n", input.User.Grade))
	b.WriteString(fmt.Sprintf("- 진단 코드: %s\n", input.User.Code))

	b.WriteString(fmt.Sprintf("\n종합 PAI: %d점\n", input.PAI))
	if tier, ok := catalog.ResolveTier(input.PAI); ok {
		b.WriteString(fmt.Sprintf("예측 등급: %s (%s), 범위 %d-%d\n",
			tier.Grade, tier.Name, tier.Low, tier.High))
		b.WriteString(fmt.Sprintf("예측 대학권: %s\n", strings.Join(tier.Universities, ", ")))
	}

	b.WriteString("\n영역별 점수:\n")
	for _, cat := range catalog.Categories() {
		b.WriteString(fmt.Sprintf("- %s (%s): %.1f점 (가중치 %.0f)\n",
			cat.Name, cat.ID, input.Categories[cat.ID], cat.Weight))
	}

	b.WriteString(`
작성 지침:
1. "1. 종합 판정"으로 시작해 PAI와 등급의 의미를 해석합니다.
2. 영역별 분석 섹션에서 ①~⑥ 순서로 6개 영역을 각각 다루고, 영역마다 판정/데이터 근거/SGS 분석 코멘트/즉시 실행 처방 네 줄을 포함합니다.
3. 가장 낮은 두 영역에 대한 "⚡ 미래 시뮬레이션 :" 블록을 작성합니다.
4. "상태 위치:" 줄로 현재 위치를 한 문장으로 요약합니다.
5. 마지막 섹션에서 "▶" 줄 세 개로 핵심 실행 권고를 제시합니다.`)

	return b.String()
}
