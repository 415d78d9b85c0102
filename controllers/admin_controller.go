package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/pkg/resp"
	"foodigo/services"
)

type AdminController struct {
	Service *services.AuthService
}

func NewAdminController(s *services.AuthService) *AdminController {
	return &AdminController{Service: s}
}

type createAdminIn struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

func (ctl *AdminController) CreateAdmin(c *gin.Context) {
	var in createAdminIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Name, email and password are required")
		return
	}

	db := configs.DB()
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var count int64
	if err := db.Model(&entity.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if count > 0 {
		resp.Fail(c, "Email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	admin := entity.Admin{
		Name:     in.Name,
		Email:    email,
		Password: string(hashed),
		Role:     in.Role,
	}
	if admin.Role == "" {
		admin.Role = "admin"
	}
	if err := db.Create(&admin).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, "Admin created successfully", admin)
}

func (ctl *AdminController) AdminLogin(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Email and password are required")
		return
	}

	token, admin, err := ctl.Service.AdminLogin(in.Email, in.Password)
	if err != nil {
		resp.Fail(c, err.Error())
		return
	}
	resp.OK(c, "Login successful", gin.H{"token": token, "admin": admin})
}
