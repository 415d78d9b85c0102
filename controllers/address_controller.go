package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/pkg/resp"
	"foodigo/utils"
)

type AddressController struct{}

func NewAddressController() *AddressController { return &AddressController{} }

type addressIn struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	DeliveryType string   `json:"delivery_type"`
	IsDefault    *bool    `json:"is_default"`
}

// AddOrEdit creates when id is zero and patches otherwise. Marking an
// address default clears the flag on the user's other addresses.
func (ctl *AddressController) AddOrEdit(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	var in addressIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Invalid address payload")
		return
	}

	db := configs.DB()
	var out entity.Address

	err := db.Transaction(func(tx *gorm.DB) error {
		if in.ID == 0 {
			if in.Name == "" || in.Address == "" {
				resp.Fail(c, "Name and address are required")
				return gorm.ErrInvalidData
			}
			addr := entity.Address{
				UserID:       userID,
				Name:         in.Name,
				Email:        in.Email,
				Phone:        in.Phone,
				Address:      in.Address,
				Latitude:     in.Latitude,
				Longitude:    in.Longitude,
				DeliveryType: "Home",
			}
			if in.DeliveryType != "" {
				addr.DeliveryType = in.DeliveryType
			}
			if in.IsDefault != nil {
				addr.IsDefault = *in.IsDefault
			}
			if err := tx.Create(&addr).Error; err != nil {
				return err
			}
			if addr.IsDefault {
				if err := tx.Model(&entity.Address{}).
					Where("user_id = ? AND id <> ?", userID, addr.ID).
					Update("is_default", false).Error; err != nil {
					return err
				}
			}
			out = addr
			return nil
		}

		var addr entity.Address
		if err := tx.Where("id = ? AND user_id = ?", in.ID, userID).First(&addr).Error; err != nil {
			resp.NotFound(c, "Address not found")
			return gorm.ErrRecordNotFound
		}

		updates := map[string]any{}
		if in.Name != "" {
			updates["name"] = in.Name
		}
		if in.Email != "" {
			updates["email"] = in.Email
		}
		if in.Phone != "" {
			updates["phone"] = in.Phone
		}
		if in.Address != "" {
			updates["address"] = in.Address
		}
		if in.Latitude != nil {
			updates["latitude"] = *in.Latitude
		}
		if in.Longitude != nil {
			updates["longitude"] = *in.Longitude
		}
		if in.DeliveryType != "" {
			updates["delivery_type"] = in.DeliveryType
		}
		if in.IsDefault != nil {
			updates["is_default"] = *in.IsDefault
		}
		if len(updates) > 0 {
			if err := tx.Model(&addr).Updates(updates).Error; err != nil {
				return err
			}
		}
		if in.IsDefault != nil && *in.IsDefault {
			if err := tx.Model(&entity.Address{}).
				Where("user_id = ? AND id <> ?", userID, addr.ID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.First(&out, addr.ID).Error
	})
	if err != nil {
		if !c.Writer.Written() {
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, "Address saved successfully", out)
}

func (ctl *AddressController) List(c *gin.Context) {
	var addresses []entity.Address
	err := configs.DB().
		Where("user_id = ?", utils.CurrentUserID(c)).
		Order("is_default DESC, id DESC").
		Find(&addresses).Error
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Addresses fetched successfully", addresses)
}

func (ctl *AddressController) Delete(c *gin.Context) {
	res := configs.DB().
		Where("id = ? AND user_id = ?", paramID(c), utils.CurrentUserID(c)).
		Delete(&entity.Address{})
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "Address not found")
		return
	}
	resp.Message(c, "Address deleted successfully")
}
