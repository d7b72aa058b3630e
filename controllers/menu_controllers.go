package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuscanteen/canteen-app/models"
	"github.com/campuscanteen/canteen-app/repository"
	"github.com/campuscanteen/canteen-app/utils"
)

type MenuController struct {
	Menu repository.MenuRepository
}

func NewMenuController(menu repository.MenuRepository) *MenuController {
	return &MenuController{Menu: menu}
}

// ListMenu -> customers see only available items, staff see everything.
func (mc *MenuController) ListMenu(c *gin.Context) {
	role, _ := c.Get("role")
	onlyAvailable := role != models.RoleStaff

	items, err := mc.Menu.ListMenuItems(onlyAvailable)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu items", items)
}

// CreateMenuItem -> staff only (route-level check).
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	type request struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Price       int    `json:"price" binding:"required,min=0"`
		Category    string `json:"category"`
		Available   *bool  `json:"available"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := &models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   true,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if err := mc.Menu.PutMenuItem(item); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem -> partial update; price changes never touch past orders
// because orders keep their own snapshot.
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	idStr := c.Param("menu_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.Menu.GetMenuItem(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	type request struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Price       *int    `json:"price" binding:"omitempty,min=0"`
		Category    *string `json:"category"`
		Available   *bool   `json:"available"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := mc.Menu.PutMenuItem(item); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}
