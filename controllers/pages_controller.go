package controllers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/pkg/resp"
	"foodigo/utils"
)

// PagesController manages the CMS pages. Each page type keeps one row per
// language; updates upsert that row.
type PagesController struct{}

func NewPagesController() *PagesController { return &PagesController{} }

func pageLanguage(c *gin.Context) string {
	if lang := c.Query("language"); lang != "" {
		return lang
	}
	if lang := c.PostForm("language"); lang != "" {
		return lang
	}
	return "en"
}

// ----- about us -----

func (ctl *PagesController) GetAboutUs(c *gin.Context) {
	var page entity.AboutUsPage
	err := configs.DB().Where("language = ?", pageLanguage(c)).First(&page).Error
	if err != nil {
		resp.NotFound(c, "Page not found")
		return
	}
	resp.OK(c, "Page fetched successfully", gin.H{"page": page, "sections": page.Sections()})
}

func (ctl *PagesController) UpdateAboutUs(c *gin.Context) {
	db := configs.DB()
	lang := pageLanguage(c)

	var stale string
	var page entity.AboutUsPage
	err := db.Where("language = ?", lang).First(&page).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		resp.ServerError(c, err)
		return
	}
	page.Language = lang

	if v := c.PostForm("title"); v != "" {
		page.Title = v
	}
	if v := c.PostForm("description"); v != "" {
		page.Description = v
	}
	if v := c.PostForm("experience_year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			resp.BadRequest(c, "experience_year must be a number")
			return
		}
		page.ExperienceYear = &year
	}
	if raw := c.PostForm("additional_data"); raw != "" {
		var sections []entity.AboutUsSection
		if err := json.Unmarshal([]byte(raw), &sections); err != nil {
			resp.BadRequest(c, "additional_data must be a JSON array")
			return
		}
		if err := page.SetSections(sections); err != nil {
			resp.ServerError(c, err)
			return
		}
	}

	if file, err := c.FormFile("about_image"); err == nil {
		path, err := utils.SaveUpload(c, file, "pages")
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		stale = page.AboutImage
		page.AboutImage = path
	}

	if err := db.Save(&page).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if stale != "" {
		utils.DeleteFile(stale)
	}
	resp.OK(c, "Page saved successfully", page)
}

// ----- terms & conditions -----

func (ctl *PagesController) GetTermsConditions(c *gin.Context) {
	var page entity.TermsConditionsPage
	err := configs.DB().Where("language = ?", pageLanguage(c)).First(&page).Error
	if err != nil {
		resp.NotFound(c, "Page not found")
		return
	}
	resp.OK(c, "Page fetched successfully", page)
}

type textPageIn struct {
	Language    string `json:"language"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (ctl *PagesController) UpdateTermsConditions(c *gin.Context) {
	var in textPageIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Invalid page payload")
		return
	}
	if in.Language == "" {
		in.Language = "en"
	}

	db := configs.DB()
	var page entity.TermsConditionsPage
	err := db.Where("language = ?", in.Language).First(&page).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		resp.ServerError(c, err)
		return
	}
	page.Language = in.Language
	if in.Title != "" {
		page.Title = in.Title
	}
	if in.Description != "" {
		page.Description = in.Description
	}

	if err := db.Save(&page).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Page saved successfully", page)
}

// ----- privacy policy -----

func (ctl *PagesController) GetPrivacyPolicy(c *gin.Context) {
	var page entity.PrivacyPolicyPage
	err := configs.DB().Where("language = ?", pageLanguage(c)).First(&page).Error
	if err != nil {
		resp.NotFound(c, "Page not found")
		return
	}
	resp.OK(c, "Page fetched successfully", page)
}

func (ctl *PagesController) UpdatePrivacyPolicy(c *gin.Context) {
	var in textPageIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Invalid page payload")
		return
	}
	if in.Language == "" {
		in.Language = "en"
	}

	db := configs.DB()
	var page entity.PrivacyPolicyPage
	err := db.Where("language = ?", in.Language).First(&page).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		resp.ServerError(c, err)
		return
	}
	page.Language = in.Language
	if in.Title != "" {
		page.Title = in.Title
	}
	if in.Description != "" {
		page.Description = in.Description
	}

	if err := db.Save(&page).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Page saved successfully", page)
}

// ----- contact us -----

func (ctl *PagesController) GetContactUs(c *gin.Context) {
	var page entity.ContactUsPage
	err := configs.DB().Where("language = ?", pageLanguage(c)).First(&page).Error
	if err != nil {
		resp.NotFound(c, "Page not found")
		return
	}
	resp.OK(c, "Page fetched successfully", page)
}

type contactPageIn struct {
	Language string `json:"language"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (ctl *PagesController) UpdateContactUs(c *gin.Context) {
	var in contactPageIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Invalid page payload")
		return
	}
	if in.Language == "" {
		in.Language = "en"
	}

	db := configs.DB()
	var page entity.ContactUsPage
	err := db.Where("language = ?", in.Language).First(&page).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		resp.ServerError(c, err)
		return
	}
	page.Language = in.Language
	if in.Title != "" {
		page.Title = in.Title
	}
	if in.Email != "" {
		page.Email = in.Email
	}
	if in.Phone != "" {
		page.Phone = in.Phone
	}
	if in.Address != "" {
		page.Address = in.Address
	}

	if err := db.Save(&page).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Page saved successfully", page)
}

// ----- login page -----

func (ctl *PagesController) GetLoginPage(c *gin.Context) {
	var page entity.LoginPage
	err := configs.DB().Where("language = ?", pageLanguage(c)).First(&page).Error
	if err != nil {
		resp.NotFound(c, "Page not found")
		return
	}
	resp.OK(c, "Page fetched successfully", page)
}

// UpdateLoginPage takes multipart form data with up to three slide images.
func (ctl *PagesController) UpdateLoginPage(c *gin.Context) {
	db := configs.DB()
	lang := pageLanguage(c)

	var stale []string
	var page entity.LoginPage
	err := db.Where("language = ?", lang).First(&page).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		resp.ServerError(c, err)
		return
	}
	page.Language = lang

	for form, field := range map[string]*string{
		"title_one":         &page.TitleOne,
		"description_one":   &page.DescriptionOne,
		"title_two":         &page.TitleTwo,
		"description_two":   &page.DescriptionTwo,
		"title_three":       &page.TitleThree,
		"description_three": &page.DescriptionThree,
	} {
		if v := c.PostForm(form); v != "" {
			*field = v
		}
	}

	for form, field := range map[string]*string{
		"image_one":   &page.ImageOne,
		"image_two":   &page.ImageTwo,
		"image_three": &page.ImageThree,
	} {
		file, err := c.FormFile(form)
		if err != nil {
			continue
		}
		path, err := utils.SaveUpload(c, file, "pages")
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		stale = append(stale, *field)
		*field = path
	}

	if err := db.Save(&page).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	for _, path := range stale {
		utils.DeleteFile(path)
	}
	resp.OK(c, "Page saved successfully", page)
}
