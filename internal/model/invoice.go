package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
)

// Owed reports whether invoices in this status count toward the customer's
// loan balance. A partial invoice carries its full total; how much of it has
// actually been settled is not encoded.
func (s PaymentStatus) Owed() bool {
	return s == PaymentPending || s == PaymentPartial
}

func (s PaymentStatus) Valid() bool {
	return s == PaymentPaid || s == PaymentPending || s == PaymentPartial
}

// Invoice is immutable once committed except for PaymentStatus transitions.
type Invoice struct {
	BaseModel
	CustomerID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer      *Customer     `json:"customer,omitempty"`
	TotalAmount   int64         `gorm:"not null" json:"total_amount"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(10);not null" json:"payment_status"`
	Items         []InvoiceItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

// InvoiceItem captures the sell price at sale time. Later product price
// changes never affect committed invoices.
type InvoiceItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
	InvoiceID uuid.UUID `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Price     int64     `gorm:"not null" json:"price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
}

func (item *InvoiceItem) BeforeCreate(tx *gorm.DB) (err error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return
}
