// Package reports generates daily, monthly, and custom-range financial
// reports over the production, sales, and cost ledgers. Reports are pure
// value objects recomputed on every query; nothing here is persisted.
package reports

import (
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/cost"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/registers/stock"
)

// ProductQuantity is a per-product production line in a report.
type ProductQuantity struct {
	ProductID   id.ID  `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int64  `json:"quantity"`
}

// ProductionTotals summarizes production inside the report window.
type ProductionTotals struct {
	TotalQuantity int64             `json:"totalQuantity"`
	ByProduct     []ProductQuantity `json:"byProduct"`
}

// SalesTotals summarizes sales (paid-invoice lines) inside the window.
type SalesTotals struct {
	TotalAmount   types.Money `json:"totalAmount"`
	TotalQuantity int64       `json:"totalQuantity"`
	Count         int         `json:"count"`
}

// CostTotals summarizes the costs applicable to the window.
type CostTotals struct {
	TotalAmount types.Money               `json:"totalAmount"`
	ByType      map[cost.Type]types.Money `json:"byType"`
}

// ProductProfit is one row of the per-product profit breakdown.
// AllocatedCost is the product's proportional share of window costs.
type ProductProfit struct {
	ProductID     id.ID       `json:"productId"`
	ProductName   string      `json:"productName"`
	Revenue       types.Money `json:"revenue"`
	AllocatedCost types.Money `json:"allocatedCost"`
	Profit        types.Money `json:"profit"`

	// Margin is Profit/Revenue×100, zero when revenue is zero.
	Margin types.Money `json:"margin"`
}

// DailyReport covers a single day.
type DailyReport struct {
	Date string `json:"date"`

	Production ProductionTotals `json:"production"`
	Sales      SalesTotals      `json:"sales"`
	Costs      CostTotals       `json:"costs"`

	// Profit is always exactly Sales.TotalAmount − Costs.TotalAmount.
	Profit types.Money `json:"profit"`

	// Stock is the current position, independent of the report window.
	Stock []stock.Balance `json:"stock"`
}

// MonthlyReport covers one calendar month.
type MonthlyReport struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	// Period is the canonical "YYYY/MM" identifier.
	Period string `json:"period"`

	Production ProductionTotals `json:"production"`
	Sales      SalesTotals      `json:"sales"`
	Costs      CostTotals       `json:"costs"`

	Profit          types.Money     `json:"profit"`
	ProfitByProduct []ProductProfit `json:"profitByProduct"`

	Stock []stock.Balance `json:"stock"`
}

// CustomReport covers an arbitrary inclusive day range.
type CustomReport struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`

	Production ProductionTotals `json:"production"`
	Sales      SalesTotals      `json:"sales"`
	Costs      CostTotals       `json:"costs"`

	Profit          types.Money     `json:"profit"`
	ProfitByProduct []ProductProfit `json:"profitByProduct"`

	Stock []stock.Balance `json:"stock"`
}
