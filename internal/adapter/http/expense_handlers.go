package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type expenseRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func (s *Server) listFixedExpenses(c *gin.Context) {
	expenses, err := s.Expenses.ListFixedExpenses(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}

	views := make([]fixedExpenseView, 0, len(expenses))
	for _, expense := range expenses {
		views = append(views, toExpenseView(expense))
	}
	Success(c, views)
}

func (s *Server) addFixedExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, CodeInvalidParam, "invalid request body: "+err.Error())
		return
	}

	id, err := s.Expenses.AddFixedExpense(c.Request.Context(), req.Name, req.Price)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, gin.H{"id": id.String()})
}

func (s *Server) updateFixedExpense(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}

	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, CodeInvalidParam, "invalid request body: "+err.Error())
		return
	}

	if err := s.Expenses.UpdateFixedExpense(c.Request.Context(), id, req.Name, req.Price); err != nil {
		Fail(c, err)
		return
	}

	Success(c, gin.H{})
}

func (s *Server) deleteFixedExpense(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}

	if err := s.Expenses.DeleteFixedExpense(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return
	}

	Success(c, gin.H{})
}
