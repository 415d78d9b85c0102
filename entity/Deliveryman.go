package entity

import "gorm.io/gorm"

type Deliveryman struct {
	gorm.Model
	FirstName   string `gorm:"size:255" json:"first_name"`
	Email       string `gorm:"size:255" json:"email"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`
	Password    string `gorm:"size:255" json:"-"`
	Image       string `gorm:"size:500" json:"image"`

	WithdrawRequests []DeliveryWithdrawRequest `gorm:"foreignKey:DeliverymanID" json:"-"`
}
