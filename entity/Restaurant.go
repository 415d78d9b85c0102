package entity

import "gorm.io/gorm"

type Restaurant struct {
	gorm.Model
	Name       string `gorm:"size:255;not null" json:"name"`
	Slug       string `gorm:"size:255;uniqueIndex" json:"slug"`
	LogoImage  string `gorm:"size:500" json:"logo_image"`
	CoverImage string `gorm:"size:500" json:"cover_image"`

	CityID    *uint    `json:"city_id"`
	City      *City    `json:"city,omitempty"`
	CuisineID *uint    `json:"cuisine_id"`
	Cuisine   *Cuisine `json:"cuisine,omitempty"`

	WhatsappPhone       string   `gorm:"size:20" json:"whatsapp_phone"`
	Address             string   `gorm:"size:500" json:"address"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	MaxDeliveryDistance *int     `json:"max_delivery_distance"`

	OwnerName  string `gorm:"size:255" json:"owner_name"`
	OwnerEmail string `gorm:"size:255" json:"owner_email"`
	OwnerPhone string `gorm:"size:20" json:"owner_phone"`

	AccountName     string `gorm:"size:255" json:"account_name"`
	AccountEmail    string `gorm:"size:255" json:"account_email"`
	AccountPassword string `gorm:"size:255" json:"-"`

	OpeningTime           string `gorm:"size:50" json:"opening_time"`
	ClosingTime           string `gorm:"size:50" json:"closing_time"`
	MinFoodProcessingTime string `gorm:"size:50" json:"min_food_processing_time"`
	MaxFoodProcessingTime string `gorm:"size:50" json:"max_food_processing_time"`
	TimeSlotSeparated     string `gorm:"size:50" json:"time_slot_seprated"`

	// comma separated keywords, decoded at the API edge
	Tags string `gorm:"size:500" json:"tags"`

	IsFeatured     bool   `gorm:"default:false" json:"is_featured"`
	PickupOrder    bool   `gorm:"default:false" json:"pickup_order"`
	DeliveryOrder  bool   `gorm:"default:true" json:"delivery_order"`
	ApprovalStatus string `gorm:"size:20;default:pending" json:"approval_status"` // pending|approved|rejected
	IsTrusted      bool   `gorm:"default:false" json:"is_trusted"`

	Products         []Product               `gorm:"foreignKey:RestaurantID" json:"-"`
	Addons           []Addon                 `gorm:"foreignKey:RestaurantID" json:"-"`
	WithdrawRequests []SellerWithdrawRequest `gorm:"foreignKey:RestaurantID" json:"-"`
}
