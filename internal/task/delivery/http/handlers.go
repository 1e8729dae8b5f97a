package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-manager/pkg/response"
)

// Parse godoc
// @Summary     Parse an utterance into tasks
// @Description Splits free text into tasks with resolved date, time and tags. Nothing is stored.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "Owner id"
// @Param       body      body   parseReq true "Utterance"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, sc, req.toInput())
	if err != nil {
		h.respondError(c, "uc.Parse", err)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Create godoc
// @Summary     Create tasks from an utterance
// @Description Parses free text, stores every task for the caller and mirrors dated tasks to the calendar.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "Owner id"
// @Param       body      body   parseReq true "Utterance"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateBulk(ctx, sc, req.toInput())
	if err != nil {
		h.respondError(c, "uc.CreateBulk", err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// ProcessVoice godoc
// @Summary     Create tasks from a voice transcript
// @Description Same as creating tasks from text, always using the rule engine.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "Owner id"
// @Param       body      body   voiceReq true "Transcript"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice/process [POST]
func (h *handler) ProcessVoice(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processVoiceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateBulk(ctx, sc, req.toInput())
	if err != nil {
		h.respondError(c, "uc.CreateBulk", err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List the caller's tasks
// @Description Returns stored tasks, oldest first. limit keeps only the most recent ones.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "Owner id"
// @Param       limit     query  int    false "Most recent N (default: all)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.respondError(c, "uc.List", err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Stream godoc
// @Summary     Stream newly created tasks
// @Description Server-sent events; one "task" event per task created for the caller.
// @Tags        Tasks
// @Produce     text/event-stream
// @Param       X-User-ID header string true "Owner id"
// @Success     200 {object} taskResp "task event payload"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/stream [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	ch, err := h.uc.Subscribe(ctx, sc)
	if err != nil {
		h.respondError(c, "uc.Subscribe", err)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	h.l.Infof(ctx, "Stream: user=%s subscribed", sc.UserID)

	// The channel is closed once the client goes away and ctx is done.
	for t := range ch {
		c.SSEvent("task", newTaskResp(t))
		c.Writer.Flush()
	}

	h.l.Infof(ctx, "Stream: user=%s disconnected", sc.UserID)
}

// SuggestCategory godoc
// @Summary     Suggest a category for a task
// @Description Picks one of the supplied categories (or the configured defaults) for a task text.
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string             true "Owner id"
// @Param       body      body   suggestCategoryReq true "Task text and categories"
// @Success     200 {object} suggestCategoryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories/suggest [POST]
func (h *handler) SuggestCategory(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processSuggestCategoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SuggestCategory(ctx, sc, req.toInput(h.defaultCategories))
	if err != nil {
		h.respondError(c, "uc.SuggestCategory", err)
		return
	}

	response.OK(c, h.newSuggestCategoryResp(output))
}
