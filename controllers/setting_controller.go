package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/pkg/resp"
	"foodigo/utils"
)

// SettingController owns the site-wide settings singleton and the payment
// gateway credentials.
type SettingController struct{}

func NewSettingController() *SettingController { return &SettingController{} }

func (ctl *SettingController) Get(c *gin.Context) {
	setting, err := loadSetting(configs.DB())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Settings fetched successfully", setting)
}

type settingIn struct {
	AppName                       string   `json:"app_name"`
	Preloader                     string   `json:"preloader"`
	CommissionType                string   `json:"commission_type"`
	SellerCommissionPerDelivery   *float64 `json:"seller_commission_per_delivery"`
	DeliveryCommissionPerDelivery *float64 `json:"delivery_commission_per_delivery"`
	ContactMessageReceiverEmail   string   `json:"contact_message_receiver_email"`
	Timezone                      string   `json:"timezone"`
	PerKilometerDeliveryCharge    *float64 `json:"per_kilometer_delivery_charge"`
}

func (ctl *SettingController) Update(c *gin.Context) {
	var in settingIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Invalid settings payload")
		return
	}

	if in.Preloader != "" && in.Preloader != "enable" && in.Preloader != "disable" {
		resp.Fail(c, "preloader must be enable or disable")
		return
	}
	if in.CommissionType != "" && in.CommissionType != "commission" && in.CommissionType != "subscription" {
		resp.Fail(c, "commission_type must be commission or subscription")
		return
	}

	db := configs.DB()
	setting, err := loadSetting(db)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	updates := map[string]any{}
	if in.AppName != "" {
		updates["app_name"] = in.AppName
	}
	if in.Preloader != "" {
		updates["preloader"] = in.Preloader
	}
	if in.CommissionType != "" {
		updates["commission_type"] = in.CommissionType
	}
	if in.SellerCommissionPerDelivery != nil {
		updates["seller_commission_per_delivery"] = *in.SellerCommissionPerDelivery
	}
	if in.DeliveryCommissionPerDelivery != nil {
		updates["delivery_commission_per_delivery"] = *in.DeliveryCommissionPerDelivery
	}
	if in.ContactMessageReceiverEmail != "" {
		updates["contact_message_receiver_email"] = in.ContactMessageReceiverEmail
	}
	if in.Timezone != "" {
		updates["timezone"] = in.Timezone
	}
	if in.PerKilometerDeliveryCharge != nil {
		updates["per_kilometer_delivery_charge"] = *in.PerKilometerDeliveryCharge
	}

	if len(updates) > 0 {
		if err := db.Model(setting).Updates(updates).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
	}
	if err := db.First(setting, setting.ID).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Settings updated successfully", setting)
}

// loadSetting returns the singleton row, creating it with defaults when the
// table is empty.
func loadSetting(db *gorm.DB) (*entity.Setting, error) {
	var setting entity.Setting
	err := db.Order("id ASC").First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fresh := entity.DefaultSetting()
		if err := db.Create(fresh).Error; err != nil {
			return nil, err
		}
		return fresh, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// ----- payment gateway -----

func (ctl *SettingController) GetPaymentGateway(c *gin.Context) {
	gateway := c.Param("gateway")

	var pg entity.PaymentGateway
	err := configs.DB().Where("gateway = ?", gateway).First(&pg).Error
	if err != nil {
		resp.NotFound(c, "Payment gateway not found")
		return
	}
	resp.OK(c, "Payment gateway fetched successfully", pg)
}

type paymentGatewayIn struct {
	Gateway   string `json:"gateway" binding:"required"`
	Status    string `json:"status"`
	Currency  string `json:"currency"`
	PublicKey string `json:"public_key"`
	SecretKey string `json:"secret_key"`
}

// UpdatePaymentGateway upserts the row keyed by the gateway name.
func (ctl *SettingController) UpdatePaymentGateway(c *gin.Context) {
	var in paymentGatewayIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "gateway is required")
		return
	}

	db := configs.DB()

	var pg entity.PaymentGateway
	err := db.Where("gateway = ?", in.Gateway).First(&pg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pg = entity.PaymentGateway{
			Gateway:   in.Gateway,
			Status:    utils.NormalizeStatus(in.Status, "inactive"),
			PublicKey: in.PublicKey,
			SecretKey: in.SecretKey,
		}
		if in.Currency != "" {
			pg.Currency = in.Currency
		}
		if err := db.Create(&pg).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.Created(c, "Payment gateway saved successfully", pg)
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	updates := map[string]any{}
	if in.Status != "" {
		updates["status"] = utils.NormalizeStatus(in.Status, pg.Status)
	}
	if in.Currency != "" {
		updates["currency"] = in.Currency
	}
	if in.PublicKey != "" {
		updates["public_key"] = in.PublicKey
	}
	if in.SecretKey != "" {
		updates["secret_key"] = in.SecretKey
	}
	if len(updates) > 0 {
		if err := db.Model(&pg).Updates(updates).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
	}
	if err := db.First(&pg, pg.ID).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Payment gateway saved successfully", pg)
}
