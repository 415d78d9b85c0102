package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"foodigo/entity"
	"foodigo/utils"
)

type CurrencyService struct {
	DB *gorm.DB
}

func NewCurrencyService(db *gorm.DB) *CurrencyService {
	return &CurrencyService{DB: db}
}

type CurrencyIn struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	Code             string   `json:"code"`
	CountryCode      string   `json:"country_code"`
	Icon             string   `json:"icon"`
	Rate             *float64 `json:"rate"`
	CurrencyPosition string   `json:"currency_position"`
	IsDefault        *bool    `json:"is_default"`
	Status           string   `json:"status"`
}

// AddOrEdit creates when ID is zero and patches only the supplied fields
// otherwise. The code must stay unique across other rows, and at most one
// currency is default at any time; the very first currency becomes default
// regardless of the input.
func (s *CurrencyService) AddOrEdit(in *CurrencyIn) (*entity.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(in.Code))

	if in.CurrencyPosition != "" && !validPosition(in.CurrencyPosition) {
		return nil, errors.New("Invalid currency position")
	}

	if code != "" {
		var count int64
		q := s.DB.Model(&entity.Currency{}).Where("code = ?", code)
		if in.ID > 0 {
			q = q.Where("id <> ?", in.ID)
		}
		if err := q.Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("Currency code already exists")
		}
	}

	var out entity.Currency
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if in.ID == 0 {
			if in.Name == "" || code == "" {
				return errors.New("Name and code are required")
			}

			var total int64
			if err := tx.Model(&entity.Currency{}).Count(&total).Error; err != nil {
				return err
			}

			cur := entity.Currency{
				Name:             in.Name,
				Code:             code,
				CountryCode:      in.CountryCode,
				Icon:             in.Icon,
				Rate:             1,
				CurrencyPosition: "before_price",
				Status:           utils.NormalizeStatus(in.Status, "active"),
			}
			if in.Rate != nil && *in.Rate > 0 {
				cur.Rate = *in.Rate
			}
			if in.CurrencyPosition != "" {
				cur.CurrencyPosition = in.CurrencyPosition
			}
			// first row is always the default
			cur.IsDefault = total == 0 || (in.IsDefault != nil && *in.IsDefault)

			if err := tx.Create(&cur).Error; err != nil {
				return err
			}
			if cur.IsDefault {
				if err := demoteOthers(tx, cur.ID); err != nil {
					return err
				}
			}
			out = cur
			return nil
		}

		var cur entity.Currency
		if err := tx.First(&cur, in.ID).Error; err != nil {
			return errors.New("Currency not found")
		}

		updates := map[string]any{}
		if in.Name != "" {
			updates["name"] = in.Name
		}
		if code != "" {
			updates["code"] = code
		}
		if in.CountryCode != "" {
			updates["country_code"] = in.CountryCode
		}
		if in.Icon != "" {
			updates["icon"] = in.Icon
		}
		if in.Rate != nil && *in.Rate > 0 {
			updates["rate"] = *in.Rate
		}
		if in.CurrencyPosition != "" {
			updates["currency_position"] = in.CurrencyPosition
		}
		if in.Status != "" {
			updates["status"] = utils.NormalizeStatus(in.Status, cur.Status)
		}
		if in.IsDefault != nil {
			// the default flag cannot be turned off directly, only moved
			if *in.IsDefault {
				updates["is_default"] = true
			} else if !cur.IsDefault {
				updates["is_default"] = false
			}
		}

		if len(updates) > 0 {
			if err := tx.Model(&cur).Updates(updates).Error; err != nil {
				return err
			}
		}
		if v, ok := updates["is_default"]; ok && v == true {
			if err := demoteOthers(tx, cur.ID); err != nil {
				return err
			}
		}
		return tx.First(&out, cur.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the currency; when it was the default, the remaining row
// with the lowest id inherits the flag. The last currency cannot be deleted.
func (s *CurrencyService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var cur entity.Currency
		if err := tx.First(&cur, id).Error; err != nil {
			return errors.New("Currency not found")
		}

		var total int64
		if err := tx.Model(&entity.Currency{}).Count(&total).Error; err != nil {
			return err
		}
		if total <= 1 {
			return errors.New("At least one currency is required")
		}

		if err := tx.Delete(&cur).Error; err != nil {
			return err
		}

		if cur.IsDefault {
			var next entity.Currency
			if err := tx.Order("id ASC").First(&next).Error; err != nil {
				return err
			}
			return tx.Model(&next).Update("is_default", true).Error
		}
		return nil
	})
}

func demoteOthers(tx *gorm.DB, keepID uint) error {
	return tx.Model(&entity.Currency{}).
		Where("id <> ?", keepID).
		Update("is_default", false).Error
}

func validPosition(pos string) bool {
	for _, p := range entity.CurrencyPositions {
		if p == pos {
			return true
		}
	}
	return false
}
