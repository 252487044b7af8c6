package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/goldbook-app/goldbook-backend/internal/domain"
	"github.com/goldbook-app/goldbook-backend/internal/usecase/checks"
)

type addCheckRequest struct {
	Bank      string          `json:"bank"`
	Number    string          `json:"number"`
	Payee     string          `json:"payee"`
	Amount    decimal.Decimal `json:"amount"`
	IssueDate string          `json:"issueDate"`
	DueDate   string          `json:"dueDate"`
	Notes     *string         `json:"notes"`
}

type updateCheckStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) listChecks(c *gin.Context) {
	query := domain.ListChecksQuery{
		FromDue: c.Query("from"),
		ToDue:   c.Query("to"),
		Search:  c.Query("search"),
	}

	if raw := c.Query("status"); raw != "" && raw != "all" {
		status, err := domain.ParseCheckStatus(raw)
		if err != nil {
			Fail(c, err)
			return
		}
		query.Status = &status
	}

	items, err := s.Checks.ListChecks(c.Request.Context(), query)
	if err != nil {
		Fail(c, err)
		return
	}

	views := make([]checkView, 0, len(items))
	for _, item := range items {
		views = append(views, toCheckView(item))
	}
	Success(c, views)
}

// addCheck keeps the client's historical {ok, id, item} / {ok:false, error}
// contract instead of the standard envelope.
func (s *Server) addCheck(c *gin.Context) {
	var req addCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body: " + err.Error()})
		return
	}

	item, err := s.Checks.AddCheck(c.Request.Context(), checks.AddCheckInput{
		Bank:      req.Bank,
		Number:    req.Number,
		Payee:     req.Payee,
		Amount:    req.Amount,
		IssueDate: req.IssueDate,
		DueDate:   req.DueDate,
		Notes:     req.Notes,
	})
	if err != nil {
		status, _ := classify(err)
		c.JSON(status, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":   true,
		"id":   item.ID.String(),
		"item": toCheckView(item),
	})
}

func (s *Server) updateCheckStatus(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}

	var req updateCheckStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, CodeInvalidParam, "invalid request body: "+err.Error())
		return
	}

	status, err := domain.ParseCheckStatus(req.Status)
	if err != nil {
		Fail(c, err)
		return
	}

	if err := s.Checks.UpdateStatus(c.Request.Context(), id, status); err != nil {
		Fail(c, err)
		return
	}

	Success(c, gin.H{})
}

func (s *Server) deleteCheck(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}

	if err := s.Checks.DeleteCheck(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return
	}

	Success(c, gin.H{})
}
