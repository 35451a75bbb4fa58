package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sevahub-simple/dto"
	"github.com/sevahub-simple/middleware"
	"github.com/sevahub-simple/repositories"
	"github.com/sevahub-simple/services"
)

// SellerController handles seller registration and listing endpoints.
type SellerController struct {
	sellers *services.SellerService
}

// NewSellerController creates a new seller controller instance
func NewSellerController(sellers *services.SellerService) *SellerController {
	return &SellerController{sellers: sellers}
}

// CreateProfile registers the caller as a seller.
func (ctrl *SellerController) CreateProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var input dto.SellerProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": dto.ValidationMessage(err),
		})
		return
	}

	profile, err := ctrl.sellers.RegisterSeller(c.Request.Context(), userID, input)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateSellerProfile) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Seller profile already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create seller profile",
		})
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// MyProfile returns the caller's own seller profile.
func (ctrl *SellerController) MyProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	profile, err := ctrl.sellers.MyProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Seller profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch seller profile",
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListVerified returns all verified seller profiles with their user info.
func (ctrl *SellerController) ListVerified(c *gin.Context) {
	profiles, err := ctrl.sellers.VerifiedListings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch seller profiles",
		})
		return
	}

	c.JSON(http.StatusOK, profiles)
}
