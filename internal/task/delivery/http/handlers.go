package http

import (
	"github.com/gin-gonic/gin"

	"task-assistant/pkg/response"
)

// Execute godoc
// @Summary     Run a command
// @Description Interprets one command line (todo, deadline, event, list, done, delete, find) and returns the assistant's reply.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body executeReq true "Command line"
// @Success     200  {object} executeResp
// @Failure     400  {object} response.Resp "Invalid command"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commands [POST]
func (h *handler) Execute(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExecuteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Execute(ctx, req.toInput())
	if err != nil {
		clientErr, warning, handled := h.mapError(err)
		switch {
		case !handled:
			h.l.Errorf(ctx, "uc.Execute: %v", err)
			response.InternalError(c, err)
		case clientErr != nil:
			response.Error(c, clientErr, nil)
		default:
			h.l.Warnf(ctx, "uc.Execute: %v", err)
			response.OK(c, h.newExecuteResp(output, warning))
		}
		return
	}

	response.OK(c, h.newExecuteResp(output, ""))
}

// List godoc
// @Summary     List tasks
// @Description Returns every task in list order with its 1-based index.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}
