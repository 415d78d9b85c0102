package entity

import "time"

// One row per user device, replaced wholesale on each login.
type DeviceToken struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"index" json:"user_id"`
	User        User      `json:"-"`
	FcmToken    string    `gorm:"size:255" json:"fcm_token"`
	DeviceToken string    `gorm:"size:64" json:"device_token"`
	DeviceType  string    `gorm:"size:32" json:"device_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
