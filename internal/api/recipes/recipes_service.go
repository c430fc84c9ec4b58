package recipes

import (
	"context"

	"github.com/hsm-gustavo/smart-pantry/internal/logging"
)

// Finder looks recipes up in a remote catalogue.
type Finder interface {
	FindByIngredients(ctx context.Context, ingredients []string, number int) ([]Suggestion, error)
}

type RecipeService struct {
	remote Finder
	logger logging.Logger
}

// NewRecipeService returns a service that consults remote first when it is
// non-nil and falls back to the built-in table.
func NewRecipeService(remote Finder, l logging.Logger) *RecipeService {
	return &RecipeService{remote: remote, logger: l.With("module", "recipes")}
}

func (s *RecipeService) Suggest(ctx context.Context, raw string) []Suggestion {
	ingredients := ParseIngredients(raw)

	if s.remote != nil && len(ingredients) > 0 {
		found, err := s.remote.FindByIngredients(ctx, ingredients, maxSuggestions)
		if err == nil {
			return found
		}
		s.logger.Warn(ctx, "remote recipe lookup failed, using local table", "error", err)
	}

	return Local(ingredients)
}
