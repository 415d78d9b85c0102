package entity

import (
	"time"

	"gorm.io/gorm"
)

type SellerWithdrawMethod struct {
	gorm.Model
	MethodName     string  `gorm:"size:255" json:"method_name"`
	MinimumAmount  float64 `json:"minimum_amount"`
	MaximumAmount  float64 `json:"maximum_amount"`
	WithdrawCharge float64 `json:"withdraw_charge"` // percent
	Description    string  `gorm:"type:text" json:"description"`
	Status         string  `gorm:"size:20;default:active" json:"status"`
}

type SellerWithdrawRequest struct {
	gorm.Model
	RestaurantID    uint                 `json:"restaurant_id"`
	Restaurant      Restaurant           `gorm:"foreignKey:RestaurantID" json:"restaurant"`
	MethodID        uint                 `json:"method_id"`
	Method          SellerWithdrawMethod `gorm:"foreignKey:MethodID" json:"method"`
	TotalAmount     float64              `json:"total_amount"`
	WithdrawAmount  float64              `json:"withdraw_amount"`
	WithdrawCharge  float64              `json:"withdraw_charge"`
	BankAccountInfo string               `gorm:"type:text" json:"bank_account_info"`
	Comment         string               `gorm:"type:text" json:"comment"`
	Status          string               `gorm:"size:20;default:pending" json:"status"` // pending|approved|rejected
	ProcessedAt     *time.Time           `json:"processed_at"`
}
