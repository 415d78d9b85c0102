package controllers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"foodigo/pkg/resp"
	"foodigo/repository"
	"foodigo/utils"
)

type ProfileController struct {
	Users *repository.UserRepository
}

func NewProfileController(users *repository.UserRepository) *ProfileController {
	return &ProfileController{Users: users}
}

func (ctl *ProfileController) GetProfile(c *gin.Context) {
	user, err := ctl.Users.FindByID(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "User not found")
		return
	}
	resp.OK(c, "Profile fetched successfully", user)
}

// UpdateProfile patches only the supplied fields. The image arrives as a
// multipart file; the old one is deleted after the new path is saved.
func (ctl *ProfileController) UpdateProfile(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	user, err := ctl.Users.FindByID(userID)
	if err != nil {
		resp.NotFound(c, "User not found")
		return
	}

	updates := map[string]any{}
	for form, column := range map[string]string{
		"name":         "name",
		"phone":        "phone",
		"country_code": "country_code",
		"address":      "address",
	} {
		if v := c.PostForm(form); v != "" {
			updates[column] = v
		}
	}
	if v := c.PostForm("email"); v != "" {
		email := strings.ToLower(strings.TrimSpace(v))
		count, err := ctl.Users.CountByEmail(email, userID)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if count > 0 {
			resp.Fail(c, "Email already in use")
			return
		}
		updates["email"] = email
	}

	lat := formFloat(c, "lat")
	lng := formFloat(c, "lng")
	if _, changed := updates["address"]; changed && (lat == nil || lng == nil) {
		resp.BadRequest(c, "lat and lng are required when address changes")
		return
	}
	if lat != nil {
		updates["lat"] = *lat
	}
	if lng != nil {
		updates["lng"] = *lng
	}
	if v := c.PostForm("dob"); v != "" {
		dob, err := time.Parse("2006-01-02", v)
		if err != nil {
			resp.BadRequest(c, "dob must be YYYY-MM-DD")
			return
		}
		updates["dob"] = dob
	}

	oldImage := ""
	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveUpload(c, file, "users")
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		oldImage = user.Image
		updates["image"] = path
	}

	if len(updates) > 0 {
		if err := ctl.Users.Update(userID, updates); err != nil {
			resp.ServerError(c, err)
			return
		}
		if oldImage != "" {
			utils.DeleteFile(oldImage)
		}
	}

	user, err = ctl.Users.FindByID(userID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Profile updated successfully", user)
}
