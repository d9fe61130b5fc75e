package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/paging-service/internal/service"
)

// queryParser collects field errors while reading query parameters so a
// request reports every bad parameter at once.
type queryParser struct {
	c     *gin.Context
	ferrs []service.FieldError
}

func (p *queryParser) intParam(name string, def int, required bool) int {
	raw, ok := p.c.GetQuery(name)
	if !ok || raw == "" {
		if required {
			p.ferrs = append(p.ferrs, service.FieldError{Field: name, Message: "is required"})
		}
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.ferrs = append(p.ferrs, service.FieldError{Field: name, Message: "must be an integer"})
		return def
	}
	return v
}

func (p *queryParser) boolParam(name string) bool {
	raw, ok := p.c.GetQuery(name)
	if !ok || raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.ferrs = append(p.ferrs, service.FieldError{Field: name, Message: "must be a boolean"})
	}
	return v
}

func (p *queryParser) err() error { return service.NewInvalidInputError(p.ferrs) }
