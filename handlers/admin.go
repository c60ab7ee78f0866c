package handlers

import (
	"net/http"

	userRepo "villabook/database/repository/user"
	villaRepo "villabook/database/repository/villa"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes read-only marketplace listings for operators.
type AdminHandler struct {
	UserRepo  userRepo.UserRepository
	VillaRepo villaRepo.VillaRepository
}

func NewAdminHandler(users userRepo.UserRepository, villas villaRepo.VillaRepository) *AdminHandler {
	return &AdminHandler{UserRepo: users, VillaRepo: villas}
}

// GetAllUsersHandler lists all user profiles.
func (h *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.UserRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetAllVillasHandler lists all listings owned by any host.
func (h *AdminHandler) GetAllVillasHandler(c *gin.Context) {
	villas, err := h.VillaRepo.GetPublished()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list villas", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"villas": villas})
}
