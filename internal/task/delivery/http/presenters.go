package http

import (
	"voice-task-manager/internal/model"
	"voice-task-manager/internal/task"
	"voice-task-manager/pkg/response"
	"voice-task-manager/pkg/taskparse"
)

// --- Request DTOs ---

type parseReq struct {
	Text       string `json:"text"        binding:"required"`
	AnchorDate string `json:"anchor_date" binding:"omitempty,datetime=2006-01-02"`
	Mode       string `json:"mode"        binding:"omitempty,oneof=auto engine"`
}

func (r parseReq) toInput() task.ParseInput {
	return task.ParseInput{
		Text:       r.Text,
		AnchorDate: r.AnchorDate,
		Mode:       task.Mode(r.Mode),
	}
}

type voiceReq struct {
	Transcript string `json:"transcript"  binding:"required"`
	AnchorDate string `json:"anchor_date" binding:"omitempty,datetime=2006-01-02"`
}

func (r voiceReq) toInput() task.CreateBulkInput {
	return task.CreateBulkInput{
		Text:       r.Transcript,
		AnchorDate: r.AnchorDate,
		Mode:       task.ModeEngine,
	}
}

type listReq struct {
	Limit int `form:"limit" binding:"omitempty,min=0,max=500"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Limit: r.Limit}
}

type suggestCategoryReq struct {
	Text       string   `json:"text"       binding:"required"`
	Categories []string `json:"categories"`
}

func (r suggestCategoryReq) toInput(defaults []string) task.SuggestCategoryInput {
	categories := r.Categories
	if len(categories) == 0 {
		categories = defaults
	}
	return task.SuggestCategoryInput{Text: r.Text, Categories: categories}
}

// --- Response DTOs ---

type parsedTaskResp struct {
	TaskName    string   `json:"task_name"`
	Description string   `json:"description"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	Tags        []string `json:"tags"`
}

func newParsedTaskResp(t taskparse.ParsedTask) parsedTaskResp {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return parsedTaskResp{
		TaskName:    t.TaskName,
		Description: t.Description,
		Date:        t.Date,
		Time:        t.Time,
		Tags:        tags,
	}
}

type parseResp struct {
	Tasks  []parsedTaskResp `json:"tasks"`
	Source string           `json:"source"`
}

func (h *handler) newParseResp(out task.ParseOutput) parseResp {
	tasks := make([]parsedTaskResp, 0, len(out.Tasks))
	for _, t := range out.Tasks {
		tasks = append(tasks, newParsedTaskResp(t))
	}
	return parseResp{Tasks: tasks, Source: string(out.Source)}
}

type taskResp struct {
	ID           string            `json:"id"`
	OwnerID      string            `json:"owner_id"`
	TaskName     string            `json:"task_name"`
	Description  string            `json:"description"`
	Date         *string           `json:"date"`
	Time         *string           `json:"time"`
	Tags         []string          `json:"tags"`
	Category     string            `json:"category,omitempty"`
	CalendarLink string            `json:"calendar_link,omitempty"`
	CreatedAt    response.DateTime `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return taskResp{
		ID:           t.ID,
		OwnerID:      t.OwnerID,
		TaskName:     t.TaskName,
		Description:  t.Description,
		Date:         t.Date,
		Time:         t.Time,
		Tags:         tags,
		Category:     t.Category,
		CalendarLink: t.CalendarLink,
		CreatedAt:    response.DateTime(t.CreatedAt),
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type createResp struct {
	Tasks  []taskResp `json:"tasks"`
	Count  int        `json:"count"`
	Source string     `json:"source"`
}

func (h *handler) newCreateResp(out task.CreateBulkOutput) createResp {
	return createResp{
		Tasks:  newTaskResps(out.Tasks),
		Count:  len(out.Tasks),
		Source: string(out.Source),
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{Tasks: newTaskResps(out.Tasks), Count: len(out.Tasks)}
}

type suggestCategoryResp struct {
	SuggestedCategory string `json:"suggested_category"`
	Confidence        string `json:"confidence"`
	Source            string `json:"source"`
}

func (h *handler) newSuggestCategoryResp(out task.SuggestCategoryOutput) suggestCategoryResp {
	return suggestCategoryResp{
		SuggestedCategory: out.Result.SuggestedCategory,
		Confidence:        string(out.Result.Confidence),
		Source:            string(out.Source),
	}
}
