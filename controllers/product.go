// controllers/product.go
package controllers

import (
	"errors"
	"net/http"

	"estetica-backend/config"
	"estetica-backend/models"
	"estetica-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateProductInput defines the expected JSON structure for creating a product
type CreateProductInput struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity"`
	Max       int     `json:"max" binding:"required"`
	Cost      float64 `json:"cost"`
	SalePrice float64 `json:"salePrice"`
}

// UpdateProductInput defines the expected JSON structure for updating a product
type UpdateProductInput struct {
	Name      *string  `json:"name"`
	Quantity  *int     `json:"quantity"`
	Max       *int     `json:"max"`
	Cost      *float64 `json:"cost"`
	SalePrice *float64 `json:"salePrice"`
}

func validateStockLevels(quantity, max int) error {
	if quantity < 0 {
		return utils.NewValidationError("quantity", "must not be negative")
	}
	if max <= 0 {
		return utils.NewValidationError("max", "must be greater than zero")
	}
	if quantity > max {
		return utils.NewValidationError("quantity", "must not exceed max")
	}
	return nil
}

// AddProduct creates a new stock item for the salon
func AddProduct(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := validateStockLevels(input.Quantity, input.Max); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	product := models.Product{
		ID:        uuid.New(),
		SalonID:   salonUUID,
		Name:      input.Name,
		Quantity:  input.Quantity,
		Max:       input.Max,
		Cost:      input.Cost,
		SalePrice: input.SalePrice,
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetProducts retrieves all products of the salon
func GetProducts(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var products []models.Product
	if err := config.DB.Where("salon_id = ?", salonUUID).
		Order("name").Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct retrieves a specific product by ID
func GetProduct(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	productUUID, ok := pathUUID(c, "id", "product")
	if !ok {
		return
	}

	var product models.Product
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, productUUID).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct updates an existing product
func UpdateProduct(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	productUUID, ok := pathUUID(c, "id", "product")
	if !ok {
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var product models.Product
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, productUUID).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.Max != nil {
		product.Max = *input.Max
	}
	if input.Cost != nil {
		if *input.Cost < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "cost: must not be negative")
			return
		}
		product.Cost = *input.Cost
	}
	if input.SalePrice != nil {
		if *input.SalePrice < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "salePrice: must not be negative")
			return
		}
		product.SalePrice = *input.SalePrice
	}

	if err := validateStockLevels(product.Quantity, product.Max); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := config.DB.Save(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product from stock
func DeleteProduct(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	productUUID, ok := pathUUID(c, "id", "product")
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, productUUID).
		Delete(&models.Product{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
