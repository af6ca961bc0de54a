package dto

import (
	"time"

	"github.com/erp/installment/internal/application/ledger"
	"github.com/erp/installment/internal/domain/catalog"
	"github.com/erp/installment/internal/domain/finance"
	"github.com/erp/installment/internal/domain/identity"
	"github.com/erp/installment/internal/domain/inventory"
	"github.com/erp/installment/internal/domain/partner"
	"github.com/erp/installment/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Decimal response fields marshal as JSON strings.

// PartnerResponse represents a partner in API responses
type PartnerResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Role      string          `json:"role"`
	Balance   decimal.Decimal `json:"balance"`
	IsActive  bool            `json:"is_active"`
	Version   int             `json:"version"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToPartnerResponse converts a domain partner
func ToPartnerResponse(p *partner.Partner) PartnerResponse {
	return PartnerResponse{
		ID:        p.ID,
		Name:      p.Name,
		Phone:     p.Phone,
		Role:      p.Role.String(),
		Balance:   p.Balance,
		IsActive:  p.IsActive,
		Version:   p.Version,
		UpdatedAt: p.UpdatedAt,
	}
}

// ProductResponse represents a product with its stock position
type ProductResponse struct {
	ID         uuid.UUID       `json:"id"`
	Title      string          `json:"title"`
	CategoryID uuid.UUID       `json:"category_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	BuyPrice   decimal.Decimal `json:"buy_price"`
	SellPrice  decimal.Decimal `json:"sell_price"`
	IsActive   bool            `json:"is_active"`
	Version    int             `json:"version"`
}

// ToProductResponse converts a domain product
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		Title:      p.Title,
		CategoryID: p.CategoryID,
		Quantity:   p.Quantity,
		BuyPrice:   p.BuyPrice,
		SellPrice:  p.SellPrice,
		IsActive:   p.IsActive,
		Version:    p.Version,
	}
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Phone    string          `json:"phone"`
	Balance  decimal.Decimal `json:"balance"`
	IsActive bool            `json:"is_active"`
	Version  int             `json:"version"`
}

// ToUserResponse converts a domain user
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Phone:    u.Phone,
		Balance:  u.Balance,
		IsActive: u.IsActive,
		Version:  u.Version,
	}
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID           uuid.UUID       `json:"id"`
	PartnerID    uuid.UUID       `json:"partner_id"`
	ProductID    uuid.UUID       `json:"product_id"`
	UserID       uuid.UUID       `json:"user_id"`
	StockEntryID *uuid.UUID      `json:"stock_entry_id,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	SellPrice    decimal.Decimal `json:"sell_price"`
	Total        decimal.Decimal `json:"total"`
	Time         int             `json:"time"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToSaleResponse converts a domain sale
func ToSaleResponse(s *trade.Sale) SaleResponse {
	return SaleResponse{
		ID:           s.ID,
		PartnerID:    s.PartnerID,
		ProductID:    s.ProductID,
		UserID:       s.UserID,
		StockEntryID: s.StockEntryID,
		Quantity:     s.Quantity,
		SellPrice:    s.SellPrice,
		Total:        s.Total(),
		Time:         s.Time,
		CreatedAt:    s.CreatedAt,
	}
}

// DebtResponse represents a debt and its amortization state
type DebtResponse struct {
	ID                 uuid.UUID       `json:"id"`
	SaleID             uuid.UUID       `json:"sale_id"`
	TotalDebt          decimal.Decimal `json:"total_debt"`
	PaidAmount         decimal.Decimal `json:"paid_amount"`
	Remaining          decimal.Decimal `json:"remaining"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
	Time               int             `json:"time"`
	FirstDueDate       time.Time       `json:"first_due_date"`
	NextDueDate        time.Time       `json:"next_due_date"`
	IsLate             bool            `json:"is_late"`
	Status             string          `json:"status"`
	Version            int             `json:"version"`
}

// ToDebtResponse converts a domain debt
func ToDebtResponse(d *finance.Debt) DebtResponse {
	return DebtResponse{
		ID:                 d.ID,
		SaleID:             d.SaleID,
		TotalDebt:          d.TotalDebt,
		PaidAmount:         d.PaidAmount,
		Remaining:          d.Remaining(),
		MonthlyInstallment: d.MonthlyInstallment(),
		Time:               d.Time,
		FirstDueDate:       d.FirstDueDate,
		NextDueDate:        d.NextDueDate,
		IsLate:             d.IsLate,
		Status:             d.Status.String(),
		Version:            d.Version,
	}
}

// CreateSaleResponse is returned by POST /sales
type CreateSaleResponse struct {
	Sale SaleResponse `json:"sale"`
	Debt DebtResponse `json:"debt"`
}

// ToCreateSaleResponse converts the outcome of CreateSale
func ToCreateSaleResponse(r *ledger.SaleResult) CreateSaleResponse {
	return CreateSaleResponse{
		Sale: ToSaleResponse(r.Sale),
		Debt: ToDebtResponse(r.Debt),
	}
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID          uuid.UUID       `json:"id"`
	PartnerID   uuid.UUID       `json:"partner_id"`
	UserID      uuid.UUID       `json:"user_id"`
	DebtID      *uuid.UUID      `json:"debt_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	PaymentType string          `json:"payment_type"`
	Comment     string          `json:"comment,omitempty"`
	Version     int             `json:"version"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToPaymentResponse converts a domain payment
func ToPaymentResponse(p *finance.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		PartnerID:   p.PartnerID,
		UserID:      p.UserID,
		DebtID:      p.DebtID,
		Amount:      p.Amount,
		Type:        string(p.Type),
		PaymentType: string(p.PaymentType),
		Comment:     p.Comment,
		Version:     p.Version,
		CreatedAt:   p.CreatedAt,
	}
}

// StockEntryResponse represents a purchase receipt
type StockEntryResponse struct {
	ID        uuid.UUID       `json:"id"`
	PartnerID uuid.UUID       `json:"partner_id"`
	ProductID uuid.UUID       `json:"product_id"`
	UserID    uuid.UUID       `json:"user_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	BuyPrice  decimal.Decimal `json:"buy_price"`
	Total     decimal.Decimal `json:"total"`
	Version   int             `json:"version"`
}

// ToStockEntryResponse converts a domain stock entry
func ToStockEntryResponse(e *inventory.StockEntry) StockEntryResponse {
	return StockEntryResponse{
		ID:        e.ID,
		PartnerID: e.PartnerID,
		ProductID: e.ProductID,
		UserID:    e.UserID,
		Quantity:  e.Quantity,
		BuyPrice:  e.BuyPrice,
		Total:     e.Total(),
		Version:   e.Version,
	}
}

// ReturnResponse represents a returned product
type ReturnResponse struct {
	ID           uuid.UUID       `json:"id"`
	SaleID       uuid.UUID       `json:"sale_id"`
	ProductID    uuid.UUID       `json:"product_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	IsResellable bool            `json:"is_resellable"`
	Version      int             `json:"version"`
}

// ToReturnResponse converts a domain return
func ToReturnResponse(r *trade.ReturnedProduct) ReturnResponse {
	return ReturnResponse{
		ID:           r.ID,
		SaleID:       r.SaleID,
		ProductID:    r.ProductID,
		Quantity:     r.Quantity,
		IsResellable: r.IsResellable,
		Version:      r.Version,
	}
}

// SalaryResponse represents a salary payout
type SalaryResponse struct {
	ID      uuid.UUID       `json:"id"`
	UserID  uuid.UUID       `json:"user_id"`
	Amount  decimal.Decimal `json:"amount"`
	Comment string          `json:"comment,omitempty"`
	Version int             `json:"version"`
}

// ToSalaryResponse converts a domain salary
func ToSalaryResponse(s *identity.Salary) SalaryResponse {
	return SalaryResponse{
		ID:      s.ID,
		UserID:  s.UserID,
		Amount:  s.Amount,
		Comment: s.Comment,
		Version: s.Version,
	}
}
