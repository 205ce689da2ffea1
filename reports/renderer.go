package reports

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Existing consumers compare reports byte for byte, keep these verbatim.
const (
	reportTitle      = "СПИСОК ПОКУПОК"
	createdDate      = "составлен %s"
	dateLayout       = "02.01.2006"
	ingredientsTitle = "\nПродукты:"
	ingredientFormat = "%s (%s): %d"
	lineFormat       = "  %d. %s"
	recipesTitle     = "\nДля приготовления:"
	recipeFormat     = "  - %s"
)

type Renderer struct {
	// Language drives upper-casing of the first letter of ingredient lines.
	Language language.Tag
}

func NewRenderer(lang language.Tag) Renderer {
	return Renderer{Language: lang}
}

// Render formats the shopping list. It does not read the clock.
func (r Renderer) Render(recipes []CartRecipe, lines []Line, generatedAt time.Time) string {
	out := make([]string, 0, len(lines)+len(recipes)+4)
	out = append(out,
		reportTitle,
		fmt.Sprintf(createdDate, generatedAt.Format(dateLayout)),
		ingredientsTitle,
	)
	for i, line := range lines {
		text := fmt.Sprintf(ingredientFormat, line.Name, line.Unit, line.Total)
		out = append(out, fmt.Sprintf(lineFormat, i+1, capitalizeFirst(text, r.Language)))
	}
	out = append(out, recipesTitle)
	for _, recipe := range recipes {
		out = append(out, fmt.Sprintf(recipeFormat, recipe.Name))
	}
	return strings.Join(out, "\n")
}

// Render uses the Russian renderer, matching the report labels.
func Render(recipes []CartRecipe, lines []Line, generatedAt time.Time) string {
	return NewRenderer(language.Russian).Render(recipes, lines, generatedAt)
}

// capitalizeFirst title-cases the first rune ("ß" becomes "Ss") and leaves
// the rest untouched. A Caser is stateful, so one is built per call.
func capitalizeFirst(s string, lang language.Tag) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 || first == utf8.RuneError {
		return s
	}
	return cases.Title(lang, cases.NoLower).String(string(first)) + s[size:]
}
