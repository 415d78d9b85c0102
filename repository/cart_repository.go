package repository

import (
	"errors"

	"gorm.io/gorm"

	"foodigo/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListByUser loads every line with the relations pricing needs.
func (r *CartRepository) ListByUser(userID uint) ([]entity.Cart, error) {
	var items []entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Product").
		Preload("Product.Restaurant").
		Preload("Size").
		Preload("Addons").
		Preload("Addons.Addon").
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// FindLine returns the user's existing line for the product+size combination,
// nil when none exists.
func (r *CartRepository) FindLine(userID, productID uint, sizeID *uint) (*entity.Cart, error) {
	q := r.DB.Where("user_id = ? AND product_id = ?", userID, productID)
	if sizeID == nil {
		q = q.Where("size_id IS NULL")
	} else {
		q = q.Where("size_id = ?", *sizeID)
	}

	var line entity.Cart
	err := q.First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) Create(line *entity.Cart) error {
	return r.DB.Create(line).Error
}

func (r *CartRepository) UpdateQuantity(userID, lineID uint, qty int) error {
	return r.DB.Model(&entity.Cart{}).
		Where("id = ? AND user_id = ?", lineID, userID).
		Update("quantity", qty).Error
}

// RemoveLine deletes the line and its addon rows together.
func (r *CartRepository) RemoveLine(userID, lineID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var line entity.Cart
		if err := tx.Where("id = ? AND user_id = ?", lineID, userID).First(&line).Error; err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", line.ID).Delete(&entity.CartAddon{}).Error; err != nil {
			return err
		}
		return tx.Delete(&line).Error
	})
}

func (r *CartRepository) Clear(userID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&entity.Cart{}).Where("user_id = ?", userID).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("cart_id IN ?", ids).Delete(&entity.CartAddon{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&entity.Cart{}).Error
	})
}
