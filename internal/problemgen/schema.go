package problemgen

import "github.com/abhisek/toanvui/internal/llm"

// ProblemSchema is the structured-output contract sent with every request.
var ProblemSchema = &llm.Schema{
	Name:        "math-problem",
	Description: "Một bài toán kèm đáp án, lời giải và gợi ý",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "Câu hỏi toán học bằng tiếng Việt. Rõ ràng, ngắn gọn.",
			},
			"answer": map[string]any{
				"type":        "number",
				"description": "Đáp án chính xác là một con số.",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Giải thích ngắn gọn cách làm bài toán này bằng tiếng Việt.",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "Một gợi ý nhỏ để giúp người giải nếu họ gặp khó khăn.",
			},
		},
		"required":             []any{"question", "answer", "explanation", "hint"},
		"additionalProperties": false,
	},
}
