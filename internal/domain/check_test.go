package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from CheckStatus
		to   CheckStatus
		want bool
	}{
		{name: "issued to deposited is legal", from: CheckStatusIssued, to: CheckStatusDeposited, want: true},
		{name: "issued to cancelled is legal", from: CheckStatusIssued, to: CheckStatusCancelled, want: true},
		{name: "deposited to returned is legal", from: CheckStatusDeposited, to: CheckStatusReturned, want: true},
		{name: "issued to returned skips deposit", from: CheckStatusIssued, to: CheckStatusReturned, want: false},
		{name: "cancelled is terminal", from: CheckStatusCancelled, to: CheckStatusDeposited, want: false},
		{name: "returned is terminal", from: CheckStatusReturned, to: CheckStatusCancelled, want: false},
		{name: "deposited to cancelled is illegal", from: CheckStatusDeposited, to: CheckStatusCancelled, want: false},
		{name: "same-status re-stamp is rejected", from: CheckStatusDeposited, to: CheckStatusDeposited, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCheckItem_Validate(t *testing.T) {
	valid := CheckItem{
		ID:        uuid.New(),
		Bank:      "Leumi",
		Number:    "100234",
		Payee:     "Gold Supplier Ltd",
		Amount:    decimal.NewFromInt(1500),
		IssueDate: "2025-01-02",
		DueDate:   "2025-03-01",
		Status:    CheckStatusIssued,
	}

	tests := []struct {
		name    string
		mutate  func(c *CheckItem)
		wantErr bool
	}{
		{name: "valid check passes", mutate: func(c *CheckItem) {}, wantErr: false},
		{name: "blank bank fails", mutate: func(c *CheckItem) { c.Bank = "   " }, wantErr: true},
		{name: "blank number fails", mutate: func(c *CheckItem) { c.Number = "" }, wantErr: true},
		{name: "blank payee fails", mutate: func(c *CheckItem) { c.Payee = "\t" }, wantErr: true},
		{name: "zero amount fails", mutate: func(c *CheckItem) { c.Amount = decimal.Zero }, wantErr: true},
		{name: "negative amount fails", mutate: func(c *CheckItem) { c.Amount = decimal.NewFromInt(-5) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseCheckStatus(t *testing.T) {
	for _, s := range []string{"issued", "deposited", "returned", "cancelled"} {
		got, err := ParseCheckStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, CheckStatus(s), got)
	}

	_, err := ParseCheckStatus("bounced")
	assert.ErrorIs(t, err, ErrValidation)
}
