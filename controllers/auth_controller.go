package controllers

import (
	"github.com/gin-gonic/gin"

	"foodigo/pkg/resp"
	"foodigo/services"
	"foodigo/utils"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

func (ctl *AuthController) Register(c *gin.Context) {
	var in services.RegisterIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Name, email and password are required")
		return
	}

	user, err := ctl.Service.Register(&in)
	if err != nil {
		resp.Fail(c, err.Error())
		return
	}
	resp.Created(c, "Registration successful", user)
}

type loginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Email and password are required")
		return
	}

	token, user, err := ctl.Service.Login(in.Email, in.Password)
	if err != nil {
		resp.Fail(c, err.Error())
		return
	}
	resp.OK(c, "Login successful", gin.H{"token": token, "user": user})
}

func (ctl *AuthController) SocialLogin(c *gin.Context) {
	var in services.SocialLoginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "social_id, social_type and email are required")
		return
	}

	token, user, err := ctl.Service.SocialLogin(&in)
	if err != nil {
		resp.Fail(c, err.Error())
		return
	}
	resp.OK(c, "Login successful", gin.H{"token": token, "user": user})
}

type changePasswordIn struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

func (ctl *AuthController) ChangePassword(c *gin.Context) {
	var in changePasswordIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Old and new password are required")
		return
	}

	if err := ctl.Service.ChangePassword(utils.CurrentUserID(c), in.OldPassword, in.NewPassword); err != nil {
		resp.Fail(c, err.Error())
		return
	}
	resp.Message(c, "Password changed successfully")
}

type deviceTokenIn struct {
	DeviceToken string `json:"device_token" binding:"required"`
	FcmToken    string `json:"fcm_token" binding:"required"`
	DeviceType  string `json:"device_type"`
}

func (ctl *AuthController) UpdateDeviceToken(c *gin.Context) {
	var in deviceTokenIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "device_token and fcm_token are required")
		return
	}

	err := ctl.Service.SaveDeviceToken(utils.CurrentUserID(c), in.DeviceToken, in.FcmToken, in.DeviceType)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Device token updated")
}

func (ctl *AuthController) Logout(c *gin.Context) {
	var in struct {
		DeviceToken string `json:"device_token"`
	}
	_ = c.ShouldBindJSON(&in)

	if err := ctl.Service.Logout(utils.CurrentUserID(c), in.DeviceToken); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Logged out successfully")
}
