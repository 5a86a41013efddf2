package groq

import "github.com/davidbz/terra/internal/domain"

// apiModels maps catalog names to the model ids Groq's API expects.
//
//nolint:gochecknoglobals // Fixed lookup table
var apiModels = map[domain.ModelID]string{
	"Llama 4 Scout (17Bx16E)":       "meta-llama/llama-4-scout-17b-16e-instruct",
	"Llama 4 Maverick (17Bx128E)":   "meta-llama/llama-4-maverick-17b-128e-instruct",
	"Llama Guard 4 12B 128k":        "meta-llama/llama-guard-4-12b",
	"DeepSeek R1 Distill Llama 70B": "deepseek-r1-distill-llama-70b",
	"Qwen3 32B 131k":                "qwen/qwen3-32b",
	"Qwen QwQ 32B (Preview)":        "qwen-qwq-32b",
	"Mistral Saba 24B":              "mistral-saba-24b",
	"Llama 3.3 70B Versatile 128k":  "llama-3.3-70b-versatile",
	"Llama 3.1 8B Instant 128k":     "llama-3.1-8b-instant",
	"Llama 3 70B 8k":                "llama3-70b-8192",
	"Llama 3 8B 8k":                 "llama3-8b-8192",
	"Gemma 2 9B 8k":                 "gemma2-9b-it",
	"Llama Guard 3 8B 8k":           "llama-guard-3-8b",
}

// APIModel returns the Groq API id for a catalog model.
func APIModel(model domain.ModelID) (string, bool) {
	id, ok := apiModels[model]
	return id, ok
}
