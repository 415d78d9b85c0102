package services

import (
	"errors"

	"gorm.io/gorm"

	"foodigo/entity"
	"foodigo/utils"
)

type BannerService struct {
	DB *gorm.DB
}

func NewBannerService(db *gorm.DB) *BannerService {
	return &BannerService{DB: db}
}

// PromotionalBannerIn is one section's payload in the batch upsert.
type PromotionalBannerIn struct {
	SectionKey   string `json:"section_key"`
	Title        string `json:"title"`
	Image        string `json:"image"` // new upload path, empty keeps the old one
	URL          string `json:"url"`
	Status       string `json:"status"`
	DisplayOrder *int   `json:"display_order"`
}

// UpsertPromotionalBanners applies the whole batch in one transaction, keyed
// by section_key. Replaced image files are returned for deletion only after
// the transaction commits, so a rollback never loses files.
func (s *BannerService) UpsertPromotionalBanners(banners []PromotionalBannerIn) ([]string, error) {
	var stale []string

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, in := range banners {
			if in.SectionKey == "" {
				return errors.New("section_key is required")
			}

			var existing entity.PromotionalBanner
			err := tx.Where("section_key = ?", in.SectionKey).First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				row := entity.PromotionalBanner{
					SectionKey: in.SectionKey,
					Title:      in.Title,
					Image:      in.Image,
					URL:        in.URL,
					Status:     utils.NormalizeStatus(in.Status, "inactive"),
				}
				if in.DisplayOrder != nil {
					row.DisplayOrder = *in.DisplayOrder
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}

			updates := map[string]any{}
			if in.Title != "" {
				updates["title"] = in.Title
			}
			if in.Image != "" {
				if existing.Image != "" && existing.Image != in.Image {
					stale = append(stale, existing.Image)
				}
				updates["image"] = in.Image
			}
			if in.URL != "" {
				updates["url"] = in.URL
			}
			if in.Status != "" {
				updates["status"] = utils.NormalizeStatus(in.Status, existing.Status)
			}
			if in.DisplayOrder != nil {
				updates["display_order"] = *in.DisplayOrder
			}
			if len(updates) == 0 {
				continue
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stale, nil
}

func (s *BannerService) ListPromotionalBanners() ([]entity.PromotionalBanner, error) {
	var banners []entity.PromotionalBanner
	err := s.DB.Order("display_order ASC, id ASC").Find(&banners).Error
	return banners, err
}

// ActivePromotionalBanners feeds the storefront home payload.
func (s *BannerService) ActivePromotionalBanners() ([]entity.PromotionalBanner, error) {
	var banners []entity.PromotionalBanner
	err := s.DB.Where("status = ?", "active").
		Order("display_order ASC, id ASC").
		Find(&banners).Error
	return banners, err
}
