package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hsm-gustavo/smart-pantry/internal/logging"
)

const SpoonacularBaseURL = "https://api.spoonacular.com"

type spoonIngredient struct {
	Name string `json:"name"`
}

type spoonRecipe struct {
	ID                int               `json:"id"`
	Title             string            `json:"title"`
	Image             string            `json:"image"`
	UsedIngredients   []spoonIngredient `json:"usedIngredients"`
	MissedIngredients []spoonIngredient `json:"missedIngredients"`
}

// SpoonacularClient queries the findByIngredients endpoint.
type SpoonacularClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

func NewSpoonacularClient(apiKey string, l logging.Logger) *SpoonacularClient {
	return &SpoonacularClient{
		apiKey:  apiKey,
		baseURL: SpoonacularBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: l.With("client", "spoonacular"),
	}
}

func (c *SpoonacularClient) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	c.logger.Debug(ctx, "spoonacular request", "endpoint", endpoint, "query", params.Encode())
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spoonacular api error: status %d", resp.StatusCode)
	}
	return body, nil
}

func (c *SpoonacularClient) FindByIngredients(ctx context.Context, ingredients []string, number int) ([]Suggestion, error) {
	params := url.Values{}
	params.Set("ingredients", strings.Join(ingredients, ","))
	params.Set("number", fmt.Sprint(number))
	params.Set("ranking", "2")

	body, err := c.get(ctx, "/recipes/findByIngredients", params)
	if err != nil {
		return nil, err
	}

	var found []spoonRecipe
	if err := json.Unmarshal(body, &found); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	out := make([]Suggestion, 0, len(found))
	for _, r := range found {
		ings := make([]string, 0, len(r.UsedIngredients)+len(r.MissedIngredients))
		for _, i := range r.UsedIngredients {
			ings = append(ings, i.Name)
		}
		for _, i := range r.MissedIngredients {
			ings = append(ings, i.Name)
		}
		out = append(out, Suggestion{
			Title:       r.Title,
			URL:         fmt.Sprintf("https://spoonacular.com/recipes/%s-%d", url.PathEscape(r.Title), r.ID),
			Ingredients: ings,
			Image:       r.Image,
		})
	}
	return out, nil
}
