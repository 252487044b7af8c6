package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/goldbook-app/goldbook-backend/internal/domain"
	"github.com/goldbook-app/goldbook-backend/internal/usecase/catalog"
)

type addAccessoryRequest struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	SKU         *string         `json:"sku"`
}

type sellAccessoryRequest struct {
	SoldPrice *decimal.Decimal `json:"soldPrice"`
}

func (s *Server) listAccessories(c *gin.Context) {
	filter, err := domain.ParseAccessoryFilter(c.Query("filter"))
	if err != nil {
		Fail(c, err)
		return
	}

	items, err := s.Catalog.ListAccessories(c.Request.Context(), filter)
	if err != nil {
		Fail(c, err)
		return
	}

	views := make([]accessoryView, 0, len(items))
	for _, item := range items {
		views = append(views, toAccessoryView(item))
	}
	Success(c, views)
}

func (s *Server) addAccessory(c *gin.Context) {
	var req addAccessoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, CodeInvalidParam, "invalid request body: "+err.Error())
		return
	}

	id, err := s.Catalog.AddAccessory(c.Request.Context(), catalog.AddAccessoryInput{
		Type:        req.Type,
		Description: req.Description,
		Price:       req.Price,
		SKU:         req.SKU,
	})
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, gin.H{"id": id.String()})
}

func (s *Server) sellAccessory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}

	var req sellAccessoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, CodeInvalidParam, "invalid request body: "+err.Error())
		return
	}

	if err := s.Catalog.SellAccessory(c.Request.Context(), id, req.SoldPrice); err != nil {
		Fail(c, err)
		return
	}

	Success(c, gin.H{})
}
