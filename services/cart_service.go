package services

import (
	"errors"

	"gorm.io/gorm"

	"foodigo/entity"
	"foodigo/repository"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr}
}

type CartAddonIn struct {
	AddonID  uint `json:"addon_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

type AddToCartIn struct {
	ProductID uint          `json:"product_id" binding:"required"`
	SizeID    *uint         `json:"size_id"`
	Quantity  int           `json:"quantity"`
	Addons    []CartAddonIn `json:"addons"`
}

// CartLine is one priced cart row.
type CartLine struct {
	entity.Cart
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type CartTotals struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

// Add creates a line or merges the quantity into an existing line with the
// same product and size. Addon rows are only attached to new lines.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	var product entity.Product
	if err := s.DB.Preload("Sizes").Preload("Addons").First(&product, in.ProductID).Error; err != nil {
		return errors.New("Product not found")
	}
	if product.Status != "active" || product.Visibility != "visible" {
		return errors.New("Product is not available")
	}

	if in.SizeID != nil && !sizeBelongs(product.Sizes, *in.SizeID) {
		return errors.New("Invalid product size")
	}
	for _, a := range in.Addons {
		if !addonBelongs(product.Addons, a.AddonID) {
			return errors.New("Invalid product addon")
		}
	}

	existing, err := s.CartRepo.FindLine(userID, in.ProductID, in.SizeID)
	if err != nil {
		return err
	}
	if existing != nil {
		return s.CartRepo.UpdateQuantity(userID, existing.ID, existing.Quantity+in.Quantity)
	}

	line := &entity.Cart{
		UserID:    userID,
		ProductID: in.ProductID,
		SizeID:    in.SizeID,
		Quantity:  in.Quantity,
	}
	for _, a := range in.Addons {
		qty := a.Quantity
		if qty <= 0 {
			qty = 1
		}
		line.Addons = append(line.Addons, entity.CartAddon{AddonID: a.AddonID, Quantity: qty})
	}
	return s.CartRepo.Create(line)
}

// Get prices every line at read time:
// unit = size price when a size is selected, else offer price when set, else
// base price; line = (unit + sum of addon price * addon qty) * qty.
func (s *CartService) Get(userID uint) (*CartTotals, error) {
	items, err := s.CartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	out := &CartTotals{Items: make([]CartLine, 0, len(items))}
	for _, it := range items {
		unit := 0.0
		if it.Size != nil {
			unit = it.Size.Price
		} else if it.Product != nil {
			unit = it.Product.EffectivePrice()
		}

		addons := 0.0
		for _, ca := range it.Addons {
			if ca.Addon != nil {
				addons += ca.Addon.Price * float64(ca.Quantity)
			}
		}

		line := (unit + addons) * float64(it.Quantity)
		out.Items = append(out.Items, CartLine{Cart: it, UnitPrice: unit, LineTotal: line})
		out.Total += line
	}
	return out, nil
}

func (s *CartService) UpdateQuantity(userID, lineID uint, qty int) error {
	if qty <= 0 {
		return s.CartRepo.RemoveLine(userID, lineID)
	}
	return s.CartRepo.UpdateQuantity(userID, lineID, qty)
}

func (s *CartService) Remove(userID, lineID uint) error {
	return s.CartRepo.RemoveLine(userID, lineID)
}

func (s *CartService) Clear(userID uint) error {
	return s.CartRepo.Clear(userID)
}

func sizeBelongs(sizes []entity.ProductSize, sizeID uint) bool {
	for _, sz := range sizes {
		if sz.ID == sizeID {
			return true
		}
	}
	return false
}

func addonBelongs(links []entity.ProductAddon, addonID uint) bool {
	for _, link := range links {
		if link.AddonID == addonID {
			return true
		}
	}
	return false
}
