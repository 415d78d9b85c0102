package services

import (
	"errors"

	"gorm.io/gorm"

	"foodigo/entity"
	"foodigo/utils"
)

type ProductService struct {
	DB *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{DB: db}
}

type ProductSizeIn struct {
	SizeName string  `json:"size_name"`
	Price    float64 `json:"price"`
}

type ProductIn struct {
	ID               uint     `json:"id"`
	CategoryID       uint     `json:"category_id"`
	RestaurantID     uint     `json:"restaurant_id"`
	Name             string   `json:"name"`
	Image            string   `json:"image"`
	ShortDescription string   `json:"short_description"`
	Price            *float64 `json:"price"`
	OfferPrice       *float64 `json:"offer_price"`
	IsFeatured       *bool    `json:"is_featured"`
	Visibility       string   `json:"visibility"`
	Status           string   `json:"status"`

	// nil slices keep the existing child rows, non-nil replace them wholesale
	Sizes          []ProductSizeIn `json:"sizes"`
	Specifications []string        `json:"specifications"`
	AddonIDs       []uint          `json:"addon_ids"`
}

// AddOrEdit creates when ID is zero and patches otherwise. Child collections
// are replaced as a whole whenever the payload includes them.
func (s *ProductService) AddOrEdit(in *ProductIn) (*entity.Product, error) {
	var out entity.Product

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var product entity.Product

		if in.ID == 0 {
			if in.Name == "" || in.CategoryID == 0 || in.RestaurantID == 0 || in.Price == nil {
				return errors.New("Name, category, restaurant and price are required")
			}
			if err := tx.First(&entity.FoodCategory{}, in.CategoryID).Error; err != nil {
				return errors.New("Food category not found")
			}
			if err := tx.First(&entity.Restaurant{}, in.RestaurantID).Error; err != nil {
				return errors.New("Restaurant not found")
			}

			product = entity.Product{
				CategoryID:       in.CategoryID,
				RestaurantID:     in.RestaurantID,
				Name:             in.Name,
				Slug:             utils.Slugify(in.Name),
				Image:            in.Image,
				ShortDescription: in.ShortDescription,
				Price:            *in.Price,
				Visibility:       "visible",
				Status:           "active",
			}
			if in.OfferPrice != nil {
				product.OfferPrice = *in.OfferPrice
			}
			if in.IsFeatured != nil {
				product.IsFeatured = *in.IsFeatured
			}
			if in.Visibility != "" {
				product.Visibility = in.Visibility
			}
			if in.Status != "" {
				product.Status = utils.NormalizeStatus(in.Status, "active")
			}
			if err := ensureUniqueSlug(tx, &entity.Product{}, product.Slug, 0); err != nil {
				return err
			}
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
		} else {
			if err := tx.First(&product, in.ID).Error; err != nil {
				return errors.New("Product not found")
			}

			updates := map[string]any{}
			if in.Name != "" && in.Name != product.Name {
				slug := utils.Slugify(in.Name)
				if err := ensureUniqueSlug(tx, &entity.Product{}, slug, product.ID); err != nil {
					return err
				}
				updates["name"] = in.Name
				updates["slug"] = slug
			}
			if in.CategoryID != 0 {
				if err := tx.First(&entity.FoodCategory{}, in.CategoryID).Error; err != nil {
					return errors.New("Food category not found")
				}
				updates["category_id"] = in.CategoryID
			}
			if in.RestaurantID != 0 {
				if err := tx.First(&entity.Restaurant{}, in.RestaurantID).Error; err != nil {
					return errors.New("Restaurant not found")
				}
				updates["restaurant_id"] = in.RestaurantID
			}
			if in.Image != "" {
				updates["image"] = in.Image
			}
			if in.ShortDescription != "" {
				updates["short_description"] = in.ShortDescription
			}
			if in.Price != nil {
				updates["price"] = *in.Price
			}
			if in.OfferPrice != nil {
				updates["offer_price"] = *in.OfferPrice
			}
			if in.IsFeatured != nil {
				updates["is_featured"] = *in.IsFeatured
			}
			if in.Visibility != "" {
				updates["visibility"] = in.Visibility
			}
			if in.Status != "" {
				updates["status"] = utils.NormalizeStatus(in.Status, product.Status)
			}
			if len(updates) > 0 {
				if err := tx.Model(&product).Updates(updates).Error; err != nil {
					return err
				}
			}
		}

		if in.Sizes != nil {
			if err := tx.Where("product_id = ?", product.ID).Delete(&entity.ProductSize{}).Error; err != nil {
				return err
			}
			for _, sz := range in.Sizes {
				row := entity.ProductSize{ProductID: product.ID, SizeName: sz.SizeName, Price: sz.Price}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}

		if in.Specifications != nil {
			if err := tx.Where("product_id = ?", product.ID).Delete(&entity.ProductSpecification{}).Error; err != nil {
				return err
			}
			for _, name := range in.Specifications {
				row := entity.ProductSpecification{ProductID: product.ID, Name: name}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}

		if in.AddonIDs != nil {
			if err := tx.Where("product_id = ?", product.ID).Delete(&entity.ProductAddon{}).Error; err != nil {
				return err
			}
			for _, addonID := range in.AddonIDs {
				if err := tx.First(&entity.Addon{}, addonID).Error; err != nil {
					return errors.New("Addon not found")
				}
				row := entity.ProductAddon{ProductID: product.ID, AddonID: addonID}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}

		return tx.Preload("Sizes").Preload("Specifications").
			Preload("Addons").Preload("Addons.Addon").
			First(&out, product.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the product with its child rows, cart lines and favorites
// in one transaction.
func (s *ProductService) Delete(id uint) (string, error) {
	var image string

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var product entity.Product
		if err := tx.First(&product, id).Error; err != nil {
			return errors.New("Product not found")
		}
		image = product.Image

		var cartIDs []uint
		if err := tx.Model(&entity.Cart{}).Where("product_id = ?", id).Pluck("id", &cartIDs).Error; err != nil {
			return err
		}
		if len(cartIDs) > 0 {
			if err := tx.Where("cart_id IN ?", cartIDs).Delete(&entity.CartAddon{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", cartIDs).Delete(&entity.Cart{}).Error; err != nil {
				return err
			}
		}

		for _, m := range []any{
			&entity.ProductSize{}, &entity.ProductSpecification{},
			&entity.ProductAddon{}, &entity.Favorite{}, &entity.OfferProduct{},
		} {
			if err := tx.Where("product_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&product).Error
	})
	if err != nil {
		return "", err
	}
	return image, nil
}

// UpdateVisibility flips a product between visible and hidden.
func (s *ProductService) UpdateVisibility(id uint, visibility string) error {
	if visibility != "visible" && visibility != "hidden" {
		return errors.New("Invalid visibility value")
	}
	res := s.DB.Model(&entity.Product{}).Where("id = ?", id).Update("visibility", visibility)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("Product not found")
	}
	return nil
}

// ensureUniqueSlug guards slug collisions with a lookup before write,
// excluding the row's own id on edits.
func ensureUniqueSlug(tx *gorm.DB, model any, slug string, excludeID uint) error {
	var count int64
	q := tx.Model(model).Where("slug = ?", slug)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("A record with this name already exists")
	}
	return nil
}
