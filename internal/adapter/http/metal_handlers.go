package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/goldbook-app/goldbook-backend/internal/domain"
	"github.com/goldbook-app/goldbook-backend/internal/usecase/ledger"
)

type mutateMetalRequest struct {
	Grams decimal.Decimal  `json:"grams"`
	Price *decimal.Decimal `json:"price"`
	Note  *string          `json:"note"`
}

func (s *Server) getMetalDashboard(c *gin.Context) {
	metal, from, to, err := dashboardParams(c)
	if err != nil {
		Fail(c, err)
		return
	}

	dashboard, err := s.Ledger.GetDashboard(c.Request.Context(), metal, from, to)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, dashboardView(dashboard))
}

func (s *Server) addMetal(c *gin.Context) {
	s.mutateMetal(c, s.Ledger.AddGrams)
}

func (s *Server) sellMetal(c *gin.Context) {
	s.mutateMetal(c, s.Ledger.SellGrams)
}

// mutateMetal handles the shared shape of add and sell: parse, mutate, then
// respond with the refreshed dashboard.
func (s *Server) mutateMetal(c *gin.Context, op func(ctx context.Context, input ledger.MutateInput) error) {
	metal, err := domain.ParseMetal(c.Param("metal"))
	if err != nil {
		Fail(c, err)
		return
	}

	var req mutateMetalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, CodeInvalidParam, "invalid request body: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	if err := op(ctx, ledger.MutateInput{
		Metal: metal,
		Grams: req.Grams,
		Price: req.Price,
		Note:  req.Note,
	}); err != nil {
		Fail(c, err)
		return
	}

	dashboard, err := s.Ledger.GetDashboard(ctx, metal, nil, nil)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, dashboardView(dashboard))
}

func (s *Server) deleteMetalTransaction(c *gin.Context) {
	metal, err := domain.ParseMetal(c.Param("metal"))
	if err != nil {
		Fail(c, err)
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := s.Ledger.DeleteTransaction(ctx, id, metal); err != nil {
		Fail(c, err)
		return
	}

	dashboard, err := s.Ledger.GetDashboard(ctx, metal, nil, nil)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, dashboardView(dashboard))
}

func dashboardParams(c *gin.Context) (domain.Metal, *time.Time, *time.Time, error) {
	metal, err := domain.ParseMetal(c.Param("metal"))
	if err != nil {
		return "", nil, nil, err
	}

	from, err := parseTimeQuery(c.Query("from"))
	if err != nil {
		return "", nil, nil, err
	}
	to, err := parseTimeQuery(c.Query("to"))
	if err != nil {
		return "", nil, nil, err
	}

	return metal, from, to, nil
}

func parseTimeQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid timestamp %q", domain.ErrValidation, s)
	}
	return &t, nil
}
