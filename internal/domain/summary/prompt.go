package summary

import (
	"fmt"
	"time"
)

const promptTemplate = `あなたは熟練の医師です。下記の診療記録に基づき、院内の別の医師が確認するための診療サマリーを作成してください。

患者ID: %s
サマリー作成日: %s

診療記録:
%s

以下の点に注意して、診療サマリーを作成してください:
1. サマリーは診療経過のみに焦点を当て、患者基本情報は含めないでください。
2. 診断名、治療内容、検査結果、現在の状態など、重要な臨床情報を簡潔にまとめてください。
3. 時系列順に重要なイベントを整理してください。
4. 医学的専門用語を適切に使用し、院内の医師間のコミュニケーションとして作成してください。
5. この患者の今後の治療計画や注意点があれば含めてください。
6. 不必要な挨拶文や冗長な表現は避け、臨床的に重要な情報に焦点を当ててください。

サマリーは「診断名」「現病歴」「治療経過」「現在の状態」「今後の方針」などの見出しを使用して構造化してください。`

// BuildPrompt wraps the formatted record text in the physician-summary
// instruction block. now is injected so tests can pin the date.
func BuildPrompt(patientID, recordText string, now time.Time) string {
	date := fmt.Sprintf("%04d年%02d月%02d日", now.Year(), now.Month(), now.Day())
	return fmt.Sprintf(promptTemplate, patientID, date, recordText)
}
