package model

type Product struct {
	BaseModel
	Name      string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Barcode   string `gorm:"type:varchar(64)" json:"barcode,omitempty"`
	BuyPrice  int64  `gorm:"not null;default:0" json:"buy_price" validate:"gte=0"`
	SellPrice int64  `gorm:"not null;default:0" json:"sell_price" validate:"gte=0"`
	Stock     int    `gorm:"not null;default:0" json:"stock" validate:"gte=0"`
}
