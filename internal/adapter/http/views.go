package http

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goldbook-app/goldbook-backend/internal/domain"
)

// View models rendered to the desktop client. Field casing follows the
// client's existing data contract; decimals marshal as quoted strings so no
// precision is lost in transit.

type metalTransactionView struct {
	ID         string           `json:"id"`
	DeltaGrams decimal.Decimal  `json:"deltaGrams"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	Note       *string          `json:"note,omitempty"`
	At         time.Time        `json:"at"`
}

type metalDashboardView struct {
	TotalGrams decimal.Decimal        `json:"totalGrams"`
	Recent     []metalTransactionView `json:"recent"`
}

type accessoryView struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	AddedAt     time.Time        `json:"addedAt"`
	SoldAt      *time.Time       `json:"soldAt,omitempty"`
	SoldPrice   *decimal.Decimal `json:"soldPrice,omitempty"`
	SKU         *string          `json:"sku,omitempty"`
}

type checkView struct {
	ID          string          `json:"id"`
	Bank        string          `json:"bank"`
	Number      string          `json:"number"`
	Payee       string          `json:"payee"`
	Amount      decimal.Decimal `json:"amount"`
	IssueDate   string          `json:"issueDate"`
	DueDate     string          `json:"dueDate"`
	Status      string          `json:"status"`
	Notes       *string         `json:"notes,omitempty"`
	DepositedAt *time.Time      `json:"depositedAt,omitempty"`
	ClearedAt   *time.Time      `json:"clearedAt,omitempty"`
}

type fixedExpenseView struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
}

func dashboardView(d *domain.MetalDashboard) metalDashboardView {
	recent := make([]metalTransactionView, 0, len(d.Recent))
	for _, tx := range d.Recent {
		recent = append(recent, metalTransactionView{
			ID:         tx.ID.String(),
			DeltaGrams: tx.DeltaGrams,
			Price:      tx.Price,
			Note:       tx.Note,
			At:         tx.At,
		})
	}
	return metalDashboardView{TotalGrams: d.TotalGrams, Recent: recent}
}

func toAccessoryView(item *domain.AccessoryItem) accessoryView {
	return accessoryView{
		ID:          item.ID.String(),
		Type:        item.Type,
		Description: item.Description,
		Price:       item.Price,
		AddedAt:     item.AddedAt,
		SoldAt:      item.SoldAt,
		SoldPrice:   item.SoldPrice,
		SKU:         item.SKU,
	}
}

func toCheckView(check *domain.CheckItem) checkView {
	return checkView{
		ID:          check.ID.String(),
		Bank:        check.Bank,
		Number:      check.Number,
		Payee:       check.Payee,
		Amount:      check.Amount,
		IssueDate:   check.IssueDate,
		DueDate:     check.DueDate,
		Status:      string(check.Status),
		Notes:       check.Notes,
		DepositedAt: check.DepositedAt,
		ClearedAt:   check.ClearedAt,
	}
}

func toExpenseView(expense *domain.FixedExpense) fixedExpenseView {
	return fixedExpenseView{
		ID:        expense.ID.String(),
		Name:      expense.Name,
		Price:     expense.Price,
		CreatedAt: expense.CreatedAt,
	}
}
