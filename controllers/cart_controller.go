package controllers

import (
	"github.com/gin-gonic/gin"

	"foodigo/pkg/resp"
	"foodigo/services"
	"foodigo/utils"
)

type CartController struct {
	Service *services.CartService
}

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Service: s}
}

func (ctl *CartController) Add(c *gin.Context) {
	var in services.AddToCartIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "product_id is required")
		return
	}

	if err := ctl.Service.Add(utils.CurrentUserID(c), &in); err != nil {
		resp.Fail(c, err.Error())
		return
	}
	resp.Message(c, "Product added to cart")
}

func (ctl *CartController) Get(c *gin.Context) {
	totals, err := ctl.Service.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Cart fetched successfully", totals)
}

type updateQuantityIn struct {
	Quantity int `json:"quantity"`
}

func (ctl *CartController) UpdateQuantity(c *gin.Context) {
	var in updateQuantityIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "quantity is required")
		return
	}

	if err := ctl.Service.UpdateQuantity(utils.CurrentUserID(c), paramID(c), in.Quantity); err != nil {
		resp.Fail(c, "Cart item not found")
		return
	}
	resp.Message(c, "Cart updated")
}

func (ctl *CartController) Remove(c *gin.Context) {
	if err := ctl.Service.Remove(utils.CurrentUserID(c), paramID(c)); err != nil {
		resp.Fail(c, "Cart item not found")
		return
	}
	resp.Message(c, "Cart item removed")
}

func (ctl *CartController) Clear(c *gin.Context) {
	if err := ctl.Service.Clear(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Cart cleared")
}
