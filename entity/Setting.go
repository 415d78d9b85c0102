package entity

import "gorm.io/gorm"

// Setting is a singleton: the first row wins, see setting controller.
type Setting struct {
	gorm.Model
	AppName                       string  `gorm:"size:255;default:Foodigo" json:"app_name"`
	Preloader                     string  `gorm:"size:20;default:disable" json:"preloader"`        // enable|disable
	CommissionType                string  `gorm:"size:50;default:commission" json:"commission_type"` // commission|subscription
	SellerCommissionPerDelivery   float64 `gorm:"default:2" json:"seller_commission_per_delivery"`
	DeliveryCommissionPerDelivery float64 `gorm:"default:2.5" json:"delivery_commission_per_delivery"`
	ContactMessageReceiverEmail   string  `gorm:"size:255" json:"contact_message_receiver_email"`
	Timezone                      string  `gorm:"size:120;default:Asia/Dhaka" json:"timezone"`
	PerKilometerDeliveryCharge    float64 `gorm:"default:3" json:"per_kilometer_delivery_charge"`
}

func DefaultSetting() *Setting {
	return &Setting{
		AppName:                       "Foodigo",
		Preloader:                     "disable",
		CommissionType:                "commission",
		SellerCommissionPerDelivery:   2,
		DeliveryCommissionPerDelivery: 2.5,
		ContactMessageReceiverEmail:   "admin@gmail.com",
		Timezone:                      "Asia/Dhaka",
		PerKilometerDeliveryCharge:    3,
	}
}
