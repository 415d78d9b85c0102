package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/pkg/resp"
)

// ExportController streams admin exports as xlsx downloads.
type ExportController struct{}

func NewExportController() *ExportController { return &ExportController{} }

// ExportProducts writes the full product list, honoring the same filters as
// the admin product listing.
func (ctl *ExportController) ExportProducts(c *gin.Context) {
	q := configs.DB().Model(&entity.Product{}).
		Preload("Restaurant").Preload("FoodCategory")

	if id := c.Query("category_id"); id != "" {
		q = q.Where("category_id = ?", id)
	}
	if id := c.Query("restaurant_id"); id != "" {
		q = q.Where("restaurant_id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var products []entity.Product
	if err := q.Order("id ASC").Find(&products).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	header := sheet.AddRow()
	for _, title := range []string{
		"ID", "Name", "Category", "Restaurant", "Price", "Offer Price",
		"Featured", "Visibility", "Status", "Created At",
	} {
		header.AddCell().Value = title
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(p.ID))
		row.AddCell().Value = p.Name
		if p.FoodCategory != nil {
			row.AddCell().Value = p.FoodCategory.Name
		} else {
			row.AddCell().Value = ""
		}
		if p.Restaurant != nil {
			row.AddCell().Value = p.Restaurant.Name
		} else {
			row.AddCell().Value = ""
		}
		row.AddCell().SetFloat(p.Price)
		row.AddCell().SetFloat(p.OfferPrice)
		row.AddCell().SetBool(p.IsFeatured)
		row.AddCell().Value = p.Visibility
		row.AddCell().Value = p.Status
		row.AddCell().Value = p.CreatedAt.Format("2006-01-02 15:04:05")
	}

	filename := fmt.Sprintf("products-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := file.Write(c.Writer); err != nil {
		resp.ServerError(c, err)
	}
}
