// controllers/blog.go
package controllers

import (
	"errors"
	"net/http"

	"estetica-backend/config"
	"estetica-backend/models"
	"estetica-backend/services"
	"estetica-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateBlogPostInput defines the expected JSON structure for creating a post
type CreateBlogPostInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateBlogPostInput defines the expected JSON structure for updating a post
type UpdateBlogPostInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// GenerateBlogInput carries the title to expand into post content
type GenerateBlogInput struct {
	Title string `json:"title" binding:"required"`
}

// CreateBlogPost creates a new blog post
func CreateBlogPost(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input CreateBlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	post := models.BlogPost{
		SalonID:     salonUUID,
		Title:       input.Title,
		Description: input.Description,
	}

	if err := config.DB.Create(&post).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create blog post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetBlogPosts retrieves the salon's blog posts, newest first
func GetBlogPosts(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var posts []models.BlogPost
	if err := config.DB.Where("salon_id = ?", salonUUID).
		Order("created_at DESC").Find(&posts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve blog posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetBlogPost retrieves a specific blog post by ID
func GetBlogPost(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	postUUID, ok := pathUUID(c, "id", "blog post")
	if !ok {
		return
	}

	var post models.BlogPost
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, postUUID).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Blog post not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdateBlogPost updates an existing blog post
func UpdateBlogPost(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	postUUID, ok := pathUUID(c, "id", "blog post")
	if !ok {
		return
	}

	var input UpdateBlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var post models.BlogPost
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, postUUID).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Blog post not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Description != nil {
		post.Description = *input.Description
	}

	if err := config.DB.Save(&post).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update blog post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeleteBlogPost removes a blog post
func DeleteBlogPost(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	postUUID, ok := pathUUID(c, "id", "blog post")
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, postUUID).
		Delete(&models.BlogPost{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete blog post")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Blog post not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}

// GenerateBlogPost asks the language model for content based on a title. The
// text comes back for review; nothing is persisted until the client saves it.
func GenerateBlogPost(c *gin.Context) {
	if _, ok := salonFromContext(c); !ok {
		return
	}

	var input GenerateBlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	content, err := services.GenerateBlogContent(input.Title)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Content generation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":       input.Title,
		"description": content,
	})
}
