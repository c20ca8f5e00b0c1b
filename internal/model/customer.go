package model

type Customer struct {
	BaseModel
	Name  string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Phone string `gorm:"type:varchar(20)" json:"phone,omitempty"`

	// Amount currently owed across unsettled invoices. Signed: settlements
	// beyond the open total push it negative.
	LoanBalance int64 `gorm:"not null;default:0" json:"loan_balance"`
}
