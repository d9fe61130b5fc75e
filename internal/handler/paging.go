package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/paging-service/internal/service"
	"github.com/maxviazov/paging-service/pkg/paging"
	"github.com/maxviazov/paging-service/pkg/response"
)

// PagingHandler exposes the paging engine over HTTP.
type PagingHandler struct {
	svc service.PagingService
}

func NewPagingHandler(svc service.PagingService) *PagingHandler { return &PagingHandler{svc: svc} }

func (h *PagingHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/paging")
	{
		g.GET("", h.calculate)
		g.POST("/turn", h.turn)
		g.POST("/restore", h.restore)
	}
}

// calculate: page defaults to 1, size and total are required.
func (h *PagingHandler) calculate(c *gin.Context) {
	q := queryParser{c: c}
	req := service.CalculateRequest{
		Page:         q.intParam("page", 1, false),
		Size:         q.intParam("size", 0, true),
		TotalItems:   q.intParam("total", 0, true),
		IncludePages: q.boolParam("pages"),
	}
	if err := q.err(); err != nil {
		response.WriteError(c, err)
		return
	}
	info, err := h.svc.Calculate(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, info)
}

func (h *PagingHandler) turn(c *gin.Context) {
	var req service.TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, bindError(err))
		return
	}
	info, err := h.svc.Turn(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, info)
}

func (h *PagingHandler) restore(c *gin.Context) {
	q := queryParser{c: c}
	includePages := q.boolParam("pages")
	if err := q.err(); err != nil {
		response.WriteError(c, err)
		return
	}
	body, err := c.GetRawData()
	if err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	info, err := h.svc.Restore(c.Request.Context(), body, includePages)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, info)
}

// bindError keeps malformed paging state distinct from other body errors,
// whose parse details are not echoed back.
func bindError(err error) error {
	if errors.Is(err, paging.ErrDeserialization) {
		return err
	}
	return service.ErrInvalidInput
}
