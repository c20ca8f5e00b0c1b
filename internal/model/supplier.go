package model

type Supplier struct {
	BaseModel
	Name  string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Phone string `gorm:"type:varchar(20)" json:"phone,omitempty"`
}
