package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/paging-service/internal/service"
	"github.com/maxviazov/paging-service/pkg/paging"
	"github.com/maxviazov/paging-service/pkg/response"
)

// TotalCountHeader mirrors the collection size of a listed page.
const TotalCountHeader = "X-Total-Count"

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler { return &ItemHandler{svc: svc} }

func (h *ItemHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/items")
	{
		g.POST("", h.create)
		g.GET("/:item_id", h.getByID)
		g.GET("", h.list)
	}
}

type createItemRequest struct {
	Name string `json:"name"`
}

func (h *ItemHandler) create(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	item, err := h.svc.CreateItem(c.Request.Context(), req.Name)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, item)
}

func (h *ItemHandler) getByID(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("item_id"), 10, 64)
	item, err := h.svc.GetItem(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, item)
}

// list: missing page or size fall back to the configured defaults.
func (h *ItemHandler) list(c *gin.Context) {
	q := queryParser{c: c}
	page := paging.Page{Number: q.intParam("page", 1, false), Size: q.intParam("size", 0, false)}
	if err := q.err(); err != nil {
		response.WriteError(c, err)
		return
	}
	res, err := h.svc.ListItems(c.Request.Context(), page)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.Header(TotalCountHeader, strconv.Itoa(res.Info().TotalItems()))
	response.WriteData(c, http.StatusOK, res)
}
