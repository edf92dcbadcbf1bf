package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careermate/pkg/response"
)

// Query godoc
// @Summary     Submit a career query
// @Description Classifies the query, delegates it to the matching specialist, and returns a structured result. Queries no specialist claims come back as free text.
// @Tags        Career
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Query data"
// @Success     200 {object} queryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - session is busy"
// @Failure     422 {object} response.Resp "Unprocessable - tool arguments rejected"
// @Failure     502 {object} response.Resp "Bad Gateway - classifier unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/career/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s := h.sessions.GetOrCreate(req.SessionID)

	result, err := s.Submit(ctx, req.Query)
	if err != nil {
		h.l.Errorf(ctx, "session.Submit: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newQueryResp(s, result))
}

// Session godoc
// @Summary     Get session state
// @Description Returns the lifecycle state of an existing session.
// @Tags        Career
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/career/sessions/{id} [GET]
func (h *handler) Session(c *gin.Context) {
	id := c.Param("id")

	s, err := h.sessions.Get(id)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusNotFound, err)
		return
	}

	response.OK(c, h.newSessionResp(s))
}
