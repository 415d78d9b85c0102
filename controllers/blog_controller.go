package controllers

import (
	"github.com/gin-gonic/gin"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/pkg/resp"
	"foodigo/utils"
)

type BlogController struct{}

func NewBlogController() *BlogController { return &BlogController{} }

// ----- blog categories -----

func (ctl *BlogController) AddOrEditCategory(c *gin.Context) {
	var in struct {
		ID               uint   `json:"id"`
		Name             string `json:"name"`
		VisibilityStatus string `json:"visibility_status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Invalid category payload")
		return
	}

	db := configs.DB()

	if in.ID == 0 {
		if in.Name == "" {
			resp.Fail(c, "Name is required")
			return
		}
		slug := utils.Slugify(in.Name)
		if taken(db, &entity.BlogCategory{}, slug, 0) {
			resp.Fail(c, "A category with this name already exists")
			return
		}
		category := entity.BlogCategory{
			Name:             in.Name,
			Slug:             slug,
			VisibilityStatus: utils.NormalizeStatus(in.VisibilityStatus, "active"),
		}
		if err := db.Create(&category).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.Created(c, "Category created successfully", category)
		return
	}

	var category entity.BlogCategory
	if err := db.First(&category, in.ID).Error; err != nil {
		resp.NotFound(c, "Category not found")
		return
	}
	if in.Name != "" && in.Name != category.Name {
		slug := utils.Slugify(in.Name)
		if taken(db, &entity.BlogCategory{}, slug, category.ID) {
			resp.Fail(c, "A category with this name already exists")
			return
		}
		category.Name = in.Name
		category.Slug = slug
	}
	if in.VisibilityStatus != "" {
		category.VisibilityStatus = utils.NormalizeStatus(in.VisibilityStatus, category.VisibilityStatus)
	}
	if err := db.Save(&category).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Category updated successfully", category)
}

func (ctl *BlogController) ListCategories(c *gin.Context) {
	var categories []entity.BlogCategory
	if err := configs.DB().Order("name ASC").Find(&categories).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Categories fetched successfully", categories)
}

func (ctl *BlogController) DeleteCategory(c *gin.Context) {
	db := configs.DB()

	var category entity.BlogCategory
	if err := db.First(&category, paramID(c)).Error; err != nil {
		resp.NotFound(c, "Category not found")
		return
	}

	var count int64
	if err := db.Model(&entity.Blog{}).Where("category_id = ?", category.ID).Count(&count).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if count > 0 {
		resp.Fail(c, "Category has blogs and cannot be deleted")
		return
	}

	if err := db.Delete(&category).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Category deleted successfully")
}

// ----- blogs -----

func (ctl *BlogController) AddOrEditBlog(c *gin.Context) {
	db := configs.DB()
	id := formUint(c, "id")
	title := c.PostForm("title")

	var stale string
	var blog entity.Blog

	if id == 0 {
		categoryID := formUint(c, "category_id")
		if title == "" || categoryID == 0 {
			resp.Fail(c, "Title and category_id are required")
			return
		}
		if err := db.First(&entity.BlogCategory{}, categoryID).Error; err != nil {
			resp.Fail(c, "Category not found")
			return
		}
		slug := utils.Slugify(title)
		if taken(db, &entity.Blog{}, slug, 0) {
			resp.Fail(c, "A blog with this title already exists")
			return
		}
		blog = entity.Blog{
			CategoryID: categoryID,
			Title:      title,
			Slug:       slug,
			Visibility: utils.NormalizeStatus(c.PostForm("visibility"), "active"),
		}
	} else {
		if err := db.First(&blog, id).Error; err != nil {
			resp.NotFound(c, "Blog not found")
			return
		}
		if title != "" && title != blog.Title {
			slug := utils.Slugify(title)
			if taken(db, &entity.Blog{}, slug, blog.ID) {
				resp.Fail(c, "A blog with this title already exists")
				return
			}
			blog.Title = title
			blog.Slug = slug
		}
		if v := formUint(c, "category_id"); v != 0 {
			if err := db.First(&entity.BlogCategory{}, v).Error; err != nil {
				resp.Fail(c, "Category not found")
				return
			}
			blog.CategoryID = v
		}
		if v := c.PostForm("visibility"); v != "" {
			blog.Visibility = utils.NormalizeStatus(v, blog.Visibility)
		}
	}

	for form, field := range map[string]*string{
		"description":     &blog.Description,
		"tags":            &blog.Tags,
		"seo_title":       &blog.SeoTitle,
		"seo_description": &blog.SeoDescription,
	} {
		if v := c.PostForm(form); v != "" {
			*field = v
		}
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveUpload(c, file, "blogs")
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		stale = blog.Image
		blog.Image = path
	}

	if err := db.Save(&blog).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if stale != "" {
		utils.DeleteFile(stale)
	}
	resp.OK(c, "Blog saved successfully", blog)
}

func (ctl *BlogController) ListBlogs(c *gin.Context) {
	db := configs.DB()
	q := db.Model(&entity.Blog{}).Preload("Category")

	if id := c.Query("category_id"); id != "" {
		q = q.Where("category_id = ?", id)
	}
	if v := c.Query("visibility"); v != "" {
		q = q.Where("visibility = ?", v)
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("LOWER(title) LIKE ?", utils.Like(search))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	page, limit, paged := utils.Pagination(c)
	if paged {
		q = q.Offset((page - 1) * limit).Limit(limit)
	}

	var blogs []entity.Blog
	if err := q.Order("id DESC").Find(&blogs).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	if paged {
		resp.Paginated(c, "Blogs fetched successfully", blogs, total, page, limit)
		return
	}
	resp.List(c, "Blogs fetched successfully", blogs, total)
}

func (ctl *BlogController) SingleBlog(c *gin.Context) {
	var blog entity.Blog
	err := configs.DB().
		Preload("Category").
		Where("slug = ? AND visibility = ?", c.Param("slug"), "active").
		First(&blog).Error
	if err != nil {
		resp.NotFound(c, "Blog not found")
		return
	}

	var comments []entity.BlogComment
	if err := configs.DB().
		Where("blog_id = ? AND status = ?", blog.ID, "approved").
		Order("id DESC").Find(&comments).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, "Blog fetched successfully", gin.H{"blog": blog, "comments": comments})
}

func (ctl *BlogController) DeleteBlog(c *gin.Context) {
	db := configs.DB()

	var blog entity.Blog
	if err := db.First(&blog, paramID(c)).Error; err != nil {
		resp.NotFound(c, "Blog not found")
		return
	}

	if err := db.Where("blog_id = ?", blog.ID).Delete(&entity.BlogComment{}).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Delete(&blog).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	utils.DeleteFile(blog.Image)
	resp.Message(c, "Blog deleted successfully")
}

// ----- blog comments -----

type blogCommentIn struct {
	BlogID  uint   `json:"blog_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Comment string `json:"comment" binding:"required"`
}

// AddComment stores the comment as pending until an admin approves it.
func (ctl *BlogController) AddComment(c *gin.Context) {
	var in blogCommentIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "blog_id, name, email and comment are required")
		return
	}

	db := configs.DB()
	if err := db.First(&entity.Blog{}, in.BlogID).Error; err != nil {
		resp.Fail(c, "Blog not found")
		return
	}

	comment := entity.BlogComment{
		BlogID:  in.BlogID,
		Name:    in.Name,
		Email:   in.Email,
		Comment: in.Comment,
		Status:  "pending",
	}
	if err := db.Create(&comment).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, "Comment submitted for review", comment)
}

func (ctl *BlogController) ListComments(c *gin.Context) {
	db := configs.DB()
	q := db.Model(&entity.BlogComment{})

	if id := c.Query("blog_id"); id != "" {
		q = q.Where("blog_id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	page, limit, paged := utils.Pagination(c)
	if paged {
		q = q.Offset((page - 1) * limit).Limit(limit)
	}

	var comments []entity.BlogComment
	if err := q.Order("id DESC").Find(&comments).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	if paged {
		resp.Paginated(c, "Comments fetched successfully", comments, total, page, limit)
		return
	}
	resp.List(c, "Comments fetched successfully", comments, total)
}

func (ctl *BlogController) UpdateCommentStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status" binding:"required,oneof=pending approved"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Status must be pending or approved")
		return
	}

	res := configs.DB().Model(&entity.BlogComment{}).
		Where("id = ?", paramID(c)).
		Update("status", in.Status)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "Comment not found")
		return
	}
	resp.Message(c, "Comment status updated")
}

func (ctl *BlogController) DeleteComment(c *gin.Context) {
	res := configs.DB().Delete(&entity.BlogComment{}, paramID(c))
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "Comment not found")
		return
	}
	resp.Message(c, "Comment deleted successfully")
}
