package problemgen

import "fmt"

const systemPrompt = "Bạn là một giáo viên toán học thân thiện, vui tính. " +
	"Hãy tạo ra các bài toán bằng Tiếng Việt phù hợp với lứa tuổi học sinh."

// buildPrompt embeds the requested difficulty in the user prompt.
func buildPrompt(d Difficulty) string {
	return fmt.Sprintf(
		"Tạo một bài toán đố hoặc phép tính thú vị với độ khó: %s.\n"+
			"Hãy đảm bảo câu trả lời là một con số cụ thể.\n"+
			"Output JSON format.",
		d.Label(),
	)
}
