package reports

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// CartSource returns the recipes currently in a user's shopping cart with
// their ingredients already loaded.
type CartSource interface {
	CartRecipes(ctx context.Context, userID uint) ([]CartRecipe, error)
}

type Reporter struct {
	source   CartSource
	renderer Renderer
	now      func() time.Time
}

func NewReporter(source CartSource, lang language.Tag) *Reporter {
	return &Reporter{source: source, renderer: NewRenderer(lang), now: time.Now}
}

// WithClock replaces the clock used to stamp reports.
func (r *Reporter) WithClock(now func() time.Time) *Reporter {
	r.now = now
	return r
}

// Build loads the user's cart and renders the shopping list.
func (r *Reporter) Build(ctx context.Context, userID uint) (string, error) {
	recipes, err := r.source.CartRecipes(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load shopping cart of user %d: %w", userID, err)
	}
	return r.renderer.Render(recipes, Aggregate(recipes), r.now()), nil
}
