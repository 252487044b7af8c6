// Package http exposes the engines to the desktop client as a local JSON
// API. The adapter only parses payloads, invokes a service and renders the
// result; all business rules live in the usecase layer.
package http

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goldbook-app/goldbook-backend/internal/domain"
	"github.com/goldbook-app/goldbook-backend/internal/usecase/catalog"
	"github.com/goldbook-app/goldbook-backend/internal/usecase/checks"
	"github.com/goldbook-app/goldbook-backend/internal/usecase/expense"
	"github.com/goldbook-app/goldbook-backend/internal/usecase/ledger"
)

// Server wires the usecase services into the HTTP routes
type Server struct {
	Ledger   *ledger.LedgerService
	Checks   *checks.CheckService
	Catalog  *catalog.CatalogService
	Expenses *expense.ExpenseService
}

// NewServer creates a new HTTP server instance
func NewServer(
	ledgerService *ledger.LedgerService,
	checkService *checks.CheckService,
	catalogService *catalog.CatalogService,
	expenseService *expense.ExpenseService,
) *Server {
	return &Server{
		Ledger:   ledgerService,
		Checks:   checkService,
		Catalog:  catalogService,
		Expenses: expenseService,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router(logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(logger), gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/ping", func(c *gin.Context) { Success(c, gin.H{"message": "pong"}) })

		metals := api.Group("/metals/:metal")
		{
			metals.GET("/dashboard", s.getMetalDashboard)
			metals.POST("/add", s.addMetal)
			metals.POST("/sell", s.sellMetal)
			metals.DELETE("/transactions/:id", s.deleteMetalTransaction)
		}

		accessories := api.Group("/accessories")
		{
			accessories.GET("", s.listAccessories)
			accessories.POST("", s.addAccessory)
			accessories.POST("/:id/sell", s.sellAccessory)
		}

		checkRoutes := api.Group("/checks")
		{
			checkRoutes.GET("", s.listChecks)
			checkRoutes.POST("", s.addCheck)
			checkRoutes.PUT("/:id/status", s.updateCheckStatus)
			checkRoutes.DELETE("/:id", s.deleteCheck)
		}

		expenses := api.Group("/expenses")
		{
			expenses.GET("", s.listFixedExpenses)
			expenses.POST("", s.addFixedExpense)
			expenses.PUT("/:id", s.updateFixedExpense)
			expenses.DELETE("/:id", s.deleteFixedExpense)
		}
	}

	return r
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id %q", domain.ErrValidation, raw)
	}
	return id, nil
}
