package recipes

import (
	"net/http"

	"github.com/hsm-gustavo/smart-pantry/internal/api/respond"
)

type SuggestResponse struct {
	Recipes []Suggestion `json:"recipes"`
}

type RecipeHandler struct {
	service *RecipeService
}

func NewRecipeHandler(s *RecipeService) *RecipeHandler {
	return &RecipeHandler{service: s}
}

// Suggest godoc
// @Summary		Suggest recipes
// @Description	Suggest recipes for a comma separated ingredient list
// @Tags			recipes
// @Produce		json
// @Param			ingredients	query		string	false	"Comma separated ingredients"	example(egg,bread)
// @Success		200			{object}	SuggestResponse
// @Router			/api/recipes/suggest [get]
func (h *RecipeHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	recipes := h.service.Suggest(r.Context(), r.URL.Query().Get("ingredients"))
	respond.JSON(w, http.StatusOK, SuggestResponse{Recipes: recipes})
}
