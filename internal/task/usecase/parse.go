package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"voice-task-manager/internal/model"
	"voice-task-manager/internal/task"
	"voice-task-manager/pkg/datemath"
	"voice-task-manager/pkg/llmprovider"
	"voice-task-manager/pkg/taskparse"
)

var errEmptyLLMResult = errors.New("LLM returned no tasks")

// Parse turns an utterance into tasks without storing them.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input task.ParseInput) (task.ParseOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.ParseOutput{}, task.ErrEmptyInput
	}
	mode, err := normalizeMode(input.Mode)
	if err != nil {
		return task.ParseOutput{}, err
	}
	anchor, err := uc.resolveAnchor(input.AnchorDate)
	if err != nil {
		return task.ParseOutput{}, err
	}

	uc.l.Infof(ctx, "Parse: user=%s mode=%s anchor=%s input_length=%d",
		sc.UserID, mode, anchor.Format(datemath.DateFormat), len(input.Text))

	if mode == task.ModeAuto && uc.llm != nil {
		tasks, err := uc.parseInputWithLLM(ctx, input.Text, anchor)
		if err == nil {
			uc.l.Infof(ctx, "Parse: LLM parsed %d tasks", len(tasks))
			return task.ParseOutput{Tasks: tasks, Source: task.SourceLLM}, nil
		}
		uc.l.Warnf(ctx, "Parse: LLM path failed, using engine: %v", err)
	}

	tasks, err := taskparse.Extract(input.Text, anchor)
	if err != nil {
		return task.ParseOutput{}, fmt.Errorf("engine extraction failed: %w", err)
	}
	uc.l.Infof(ctx, "Parse: engine parsed %d tasks", len(tasks))

	return task.ParseOutput{Tasks: tasks, Source: task.SourceEngine}, nil
}

// parseInputWithLLM asks the hosted model for tasks and validates every record.
func (uc *implUseCase) parseInputWithLLM(ctx context.Context, text string, anchor time.Time) ([]taskparse.ParsedTask, error) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: extractSystemPrompt}},
		},
		Messages:    []llmprovider.Message{llmprovider.UserText(buildExtractPrompt(text, anchor.Format(datemath.DateFormat)))},
		Temperature: 0.1, // Low temperature for deterministic JSON output
		MaxTokens:   2048,
		JSONOutput:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM request failed: %w", err)
	}

	responseText := resp.Text()
	uc.l.Debugf(ctx, "LLM raw response: %s", responseText)

	cleanedJSON := sanitizeJSONResponse(responseText)

	raw, err := decodeLLMTasks(cleanedJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LLM JSON response: %w", err)
	}
	if len(raw) == 0 {
		return nil, errEmptyLLMResult
	}

	tasks := make([]taskparse.ParsedTask, 0, len(raw))
	for i, t := range raw {
		valid, err := taskparse.Validate(t)
		if err != nil {
			return nil, fmt.Errorf("LLM task %d rejected: %w", i, err)
		}
		tasks = append(tasks, valid)
	}
	return tasks, nil
}
