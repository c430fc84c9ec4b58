package recipes

import (
	"slices"
	"strings"
)

const (
	maxIngredients = 10
	maxSuggestions = 6
)

type Suggestion struct {
	Title       string   `json:"title" example:"French Toast"`
	URL         string   `json:"url" example:"https://www.allrecipes.com/recipe/7016/french-toast-i/"`
	Ingredients []string `json:"ingredients" example:"egg,bread,milk"`
	Image       string   `json:"image,omitempty"`
}

func (s Suggestion) clone() Suggestion {
	s.Ingredients = slices.Clone(s.Ingredients)
	return s
}

type rule struct {
	needs []string
	s     Suggestion
}

var rules = []rule{
	{[]string{"egg", "bread"}, Suggestion{
		Title:       "French Toast",
		URL:         "https://www.allrecipes.com/recipe/7016/french-toast-i/",
		Ingredients: []string{"egg", "bread", "milk"},
	}},
	{[]string{"tomato", "pasta"}, Suggestion{
		Title:       "Simple Tomato Pasta",
		URL:         "https://www.allrecipes.com/recipe/23431/pasta-with-fresh-tomatoes/",
		Ingredients: []string{"pasta", "tomato", "garlic"},
	}},
	{[]string{"rice", "chicken"}, Suggestion{
		Title:       "Chicken Fried Rice",
		URL:         "https://www.allrecipes.com/recipe/79543/chicken-fried-rice/",
		Ingredients: []string{"rice", "chicken", "egg", "peas"},
	}},
	{[]string{"banana"}, Suggestion{
		Title:       "Banana Smoothie",
		URL:         "https://www.allrecipes.com/recipe/221261/banana-banana-strawberry-smoothie/",
		Ingredients: []string{"banana", "milk", "ice"},
	}},
	{[]string{"potato"}, Suggestion{
		Title:       "Crispy Roasted Potatoes",
		URL:         "https://www.allrecipes.com/recipe/240208/ultimate-roasted-potatoes/",
		Ingredients: []string{"potato", "oil", "salt"},
	}},
}

var fallback = Suggestion{
	Title:       "Mixed Veg Stir-fry",
	URL:         "https://www.allrecipes.com/recipe/229960/quick-vegetable-stir-fry/",
	Ingredients: []string{"vegetables", "soy sauce", "garlic"},
}

// ParseIngredients splits a comma separated list, dropping blanks and
// keeping at most the first ten entries.
func ParseIngredients(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
		if len(out) == maxIngredients {
			break
		}
	}
	return out
}

// Local matches ingredients against the built-in table. A rule fires when
// every keyword it needs is a substring of some ingredient.
func Local(ingredients []string) []Suggestion {
	lower := make([]string, len(ingredients))
	for i, ing := range ingredients {
		lower[i] = strings.ToLower(ing)
	}
	has := func(k string) bool {
		for _, ing := range lower {
			if strings.Contains(ing, k) {
				return true
			}
		}
		return false
	}

	out := []Suggestion{}
	for _, r := range rules {
		matched := true
		for _, k := range r.needs {
			if !has(k) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, r.s.clone())
		}
	}
	if len(out) == 0 {
		out = append(out, fallback.clone())
	}
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
