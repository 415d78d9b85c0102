package controllers

import (
	"github.com/gin-gonic/gin"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/pkg/resp"
	"foodigo/services"
)

type CurrencyController struct {
	Service *services.CurrencyService
}

func NewCurrencyController(s *services.CurrencyService) *CurrencyController {
	return &CurrencyController{Service: s}
}

func (ctl *CurrencyController) AddOrEdit(c *gin.Context) {
	var in services.CurrencyIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Invalid currency payload")
		return
	}

	currency, err := ctl.Service.AddOrEdit(&in)
	if err != nil {
		resp.Fail(c, err.Error())
		return
	}
	resp.OK(c, "Currency saved successfully", currency)
}

func (ctl *CurrencyController) List(c *gin.Context) {
	var currencies []entity.Currency
	err := configs.DB().Order("is_default DESC, id ASC").Find(&currencies).Error
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Currencies fetched successfully", currencies)
}

func (ctl *CurrencyController) Delete(c *gin.Context) {
	if err := ctl.Service.Delete(paramID(c)); err != nil {
		resp.Fail(c, err.Error())
		return
	}
	resp.Message(c, "Currency deleted successfully")
}
