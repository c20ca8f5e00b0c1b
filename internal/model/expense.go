package model

import "time"

type Expense struct {
	BaseModel
	Amount      int64     `gorm:"not null" json:"amount" validate:"gte=0"`
	Date        time.Time `gorm:"type:date;not null" json:"date" validate:"required"`
	Description string    `gorm:"type:text;not null" json:"description" validate:"required"`
}
