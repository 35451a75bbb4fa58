package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, authCtrl *AuthController, sellerCtrl *SellerController, requireSession gin.HandlerFunc) {
	// Public endpoints
	router.GET("/health", HealthCheck)
	router.GET("/service-categories", ListServiceCategories)
	router.GET("/seller-profiles", sellerCtrl.ListVerified)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/firebase", authCtrl.FirebaseLogin)
		authGroup.POST("/logout", authCtrl.Logout)
		// Session middleware only for the endpoint that needs a caller
		authGroup.GET("/user", requireSession, authCtrl.GetCurrentUser)
	}

	// Seller profile endpoints - protected by the session middleware
	profileGroup := router.Group("/seller-profile")
	profileGroup.Use(requireSession)
	{
		profileGroup.POST("", sellerCtrl.CreateProfile)
		profileGroup.GET("/me", sellerCtrl.MyProfile)
	}
}
