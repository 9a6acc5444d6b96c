package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/cookiemice-api/internal/models"
	"github.com/windoze95/cookiemice-api/internal/service"
)

// RecipeHandler is the handler for recipe CRUD requests.
type RecipeHandler struct {
	Service *service.RecipeService
}

// NewRecipeHandler is the constructor function for initializing a new RecipeHandler.
func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{Service: recipeService}
}

// ListRecipes returns every recipe.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.Service.ListRecipes(c.Request.Context())
	if err != nil {
		respondError(c, err, "list recipes")
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// GetRecipe returns a recipe by ID.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.Service.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get recipe")
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// CreateRecipe stores a new recipe from the request body.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := h.Service.CreateRecipe(c.Request.Context(), &recipe)
	if err != nil {
		respondError(c, err, "create recipe")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateRecipe replaces a recipe's fields with the request body.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := h.Service.UpdateRecipe(c.Request.Context(), c.Param("id"), &recipe)
	if err != nil {
		respondError(c, err, "update recipe")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteRecipe removes a recipe by ID.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	if err := h.Service.DeleteRecipe(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "delete recipe")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}
