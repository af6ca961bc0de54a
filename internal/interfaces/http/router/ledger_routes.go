package router

import (
	"github.com/erp/installment/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// LedgerRoutes returns the route groups of the ledger API. commandMW runs
// in front of every route that mutates the ledger.
func LedgerRoutes(h *handler.LedgerHandler, commandMW ...gin.HandlerFunc) []RouteRegistrar {
	command := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		chain := make([]gin.HandlerFunc, 0, len(commandMW)+1)
		chain = append(chain, commandMW...)
		return append(chain, fn)
	}

	sales := NewDomainGroup("/sales").
		POST("", command(h.CreateSale)...).
		GET("/:id", h.GetSale).
		GET("/:id/debt", h.GetSaleDebt)

	payments := NewDomainGroup("/payments").
		POST("", command(h.CreatePayment)...).
		GET("/:id", h.GetPayment).
		PUT("/:id", command(h.UpdatePayment)...).
		DELETE("/:id", command(h.DeletePayment)...)

	stockEntries := NewDomainGroup("/stock-entries").
		POST("", command(h.CreateStockEntry)...).
		PUT("/:id", command(h.UpdateStockEntry)...).
		DELETE("/:id", command(h.DeleteStockEntry)...)

	returns := NewDomainGroup("/returns").
		POST("", command(h.CreateReturn)...).
		PUT("/:id", command(h.UpdateReturn)...).
		DELETE("/:id", command(h.DeleteReturn)...)

	salaries := NewDomainGroup("/salaries").
		POST("", command(h.CreateSalary)...).
		PUT("/:id", command(h.UpdateSalary)...).
		DELETE("/:id", command(h.DeleteSalary)...)

	partners := NewDomainGroup("/partners").
		GET("/:id", h.GetPartner).
		DELETE("/:id", command(h.DeletePartner)...)

	products := NewDomainGroup("/products").
		GET("/:id", h.GetProduct)

	users := NewDomainGroup("/users").
		GET("/:id", h.GetUser)

	debts := NewDomainGroup("/debts").
		GET("/:id", h.GetDebt).
		POST("/overdue-sweep", h.MarkOverdueDebts)

	return []RouteRegistrar{sales, payments, stockEntries, returns, salaries, partners, products, users, debts}
}
