package controllers

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/pkg/resp"
	"foodigo/services"
	"foodigo/utils"
)

type BannerController struct {
	Service *services.BannerService
}

func NewBannerController(s *services.BannerService) *BannerController {
	return &BannerController{Service: s}
}

// ----- offer deal banners -----

func (ctl *BannerController) AddOrEditOfferDealBanner(c *gin.Context) {
	db := configs.DB()
	id := formUint(c, "id")

	var stale string
	var banner entity.OfferDealBanner

	if id == 0 {
		banner = entity.OfferDealBanner{
			URL:    c.PostForm("url"),
			Status: utils.NormalizeStatus(c.PostForm("status"), "inactive"),
		}
	} else {
		if err := db.First(&banner, id).Error; err != nil {
			resp.NotFound(c, "Banner not found")
			return
		}
		if v := c.PostForm("url"); v != "" {
			banner.URL = v
		}
		if s := c.PostForm("status"); s != "" {
			banner.Status = utils.NormalizeStatus(s, banner.Status)
		}
	}
	if v := formFloat(c, "display_order"); v != nil {
		banner.DisplayOrder = int(*v)
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveUpload(c, file, "banners")
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		stale = banner.Image
		banner.Image = path
	}
	if id == 0 && banner.Image == "" {
		resp.Fail(c, "Image is required")
		return
	}

	if err := db.Save(&banner).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if stale != "" {
		utils.DeleteFile(stale)
	}
	resp.OK(c, "Banner saved successfully", banner)
}

func (ctl *BannerController) ListOfferDealBanners(c *gin.Context) {
	var banners []entity.OfferDealBanner
	err := configs.DB().Order("display_order ASC, id ASC").Find(&banners).Error
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Banners fetched successfully", banners)
}

func (ctl *BannerController) DeleteOfferDealBanner(c *gin.Context) {
	db := configs.DB()

	var banner entity.OfferDealBanner
	if err := db.First(&banner, paramID(c)).Error; err != nil {
		resp.NotFound(c, "Banner not found")
		return
	}
	if err := db.Delete(&banner).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	utils.DeleteFile(banner.Image)
	resp.Message(c, "Banner deleted successfully")
}

// ----- promotional banners -----

// UpdatePromotionalBanners takes the whole section batch as multipart form
// data: a "banners" field holding the JSON array, plus one optional file per
// section named image_<section_key>. Replaced files are deleted only after
// the batch commits.
func (ctl *BannerController) UpdatePromotionalBanners(c *gin.Context) {
	raw := c.PostForm("banners")
	if raw == "" {
		resp.BadRequest(c, "banners is required")
		return
	}

	var banners []services.PromotionalBannerIn
	if err := json.Unmarshal([]byte(raw), &banners); err != nil {
		resp.BadRequest(c, "banners must be a JSON array")
		return
	}

	var uploaded []string
	for i := range banners {
		field := fmt.Sprintf("image_%s", banners[i].SectionKey)
		file, err := c.FormFile(field)
		if err != nil {
			continue
		}
		path, err := utils.SaveUpload(c, file, "banners")
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		banners[i].Image = path
		uploaded = append(uploaded, path)
	}

	stale, err := ctl.Service.UpsertPromotionalBanners(banners)
	if err != nil {
		// the batch rolled back, drop the files saved for it
		for _, path := range uploaded {
			utils.DeleteFile(path)
		}
		resp.Fail(c, err.Error())
		return
	}
	for _, path := range stale {
		utils.DeleteFile(path)
	}
	resp.Message(c, "Promotional banners updated")
}

func (ctl *BannerController) ListPromotionalBanners(c *gin.Context) {
	banners, err := ctl.Service.ListPromotionalBanners()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Promotional banners fetched successfully", banners)
}
