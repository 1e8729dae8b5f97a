package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"voice-task-manager/internal/model"
	"voice-task-manager/internal/task"
	"voice-task-manager/pkg/categorize"
	"voice-task-manager/pkg/llmprovider"
)

// SuggestCategory picks one of the supplied categories for a task text.
// The hosted model is asked first and its answers are cached; the keyword classifier answers otherwise.
func (uc *implUseCase) SuggestCategory(ctx context.Context, sc model.Scope, input task.SuggestCategoryInput) (task.SuggestCategoryOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.SuggestCategoryOutput{}, task.ErrEmptyInput
	}
	categories := cleanCategories(input.Categories)
	if len(categories) == 0 {
		return task.SuggestCategoryOutput{}, task.ErrNoCategories
	}

	if uc.llm != nil {
		key := cacheKey(input.Text, categories)
		if cached, ok := uc.cache.Get(key); ok {
			return task.SuggestCategoryOutput{Result: cached, Source: task.SourceLLM}, nil
		}

		result, err := uc.suggestWithLLM(ctx, input.Text, categories)
		if err == nil {
			uc.cache.Add(key, result)
			return task.SuggestCategoryOutput{Result: result, Source: task.SourceLLM}, nil
		}
		uc.l.Warnf(ctx, "SuggestCategory: LLM path failed, using classifier: %v", err)
	}

	result, err := uc.classifier.Classify(input.Text, categories)
	if err != nil {
		return task.SuggestCategoryOutput{}, fmt.Errorf("classifier failed: %w", err)
	}

	uc.l.Debugf(ctx, "SuggestCategory: user=%s category=%s confidence=%s", sc.UserID, result.SuggestedCategory, result.Confidence)
	return task.SuggestCategoryOutput{Result: result, Source: task.SourceEngine}, nil
}

func (uc *implUseCase) suggestWithLLM(ctx context.Context, text string, categories []string) (categorize.Result, error) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: categorySystemPrompt}},
		},
		Messages:    []llmprovider.Message{llmprovider.UserText(buildCategoryPrompt(text, categories))},
		Temperature: 0.1,
		MaxTokens:   256,
		JSONOutput:  true,
	})
	if err != nil {
		return categorize.Result{}, fmt.Errorf("LLM request failed: %w", err)
	}

	var result categorize.Result
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(resp.Text())), &result); err != nil {
		return categorize.Result{}, fmt.Errorf("failed to parse LLM JSON response: %w", err)
	}

	// The answer must name a supplied category; match it back to the caller's spelling.
	matched := ""
	for _, c := range categories {
		if strings.EqualFold(c, strings.TrimSpace(result.SuggestedCategory)) {
			matched = c
			break
		}
	}
	if matched == "" {
		return categorize.Result{}, fmt.Errorf("LLM suggested unknown category %q", result.SuggestedCategory)
	}

	confidence := categorize.Confidence(strings.ToLower(string(result.Confidence)))
	if !confidence.Valid() {
		return categorize.Result{}, fmt.Errorf("LLM returned unknown confidence %q", result.Confidence)
	}

	return categorize.Result{SuggestedCategory: matched, Confidence: confidence}, nil
}

func cleanCategories(in []string) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
