package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	infraRepo "github.com/Vyora-Platform/vendor-api/internal/infrastructure/repository"
	"github.com/Vyora-Platform/vendor-api/internal/presentation/http/dto/response"
)

// VendorMiddleware copies the vendor scope from the authenticated token into
// the request context so repositories can enforce it. It must run after
// AuthMiddleware.
func VendorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorIDVal, exists := c.Get("vendor_id")
		if !exists {
			response.BadRequest(c, "Vendor context required")
			c.Abort()
			return
		}

		vendorID, ok := vendorIDVal.(uuid.UUID)
		if !ok || vendorID == uuid.Nil {
			response.BadRequest(c, "Invalid vendor context")
			c.Abort()
			return
		}

		// Set vendor ID in request context (for services/repositories)
		ctx := infraRepo.WithVendor(c.Request.Context(), vendorID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetVendorID retrieves the vendor ID from gin context
func GetVendorID(c *gin.Context) uuid.UUID {
	vendorIDVal, exists := c.Get("vendor_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := vendorIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
