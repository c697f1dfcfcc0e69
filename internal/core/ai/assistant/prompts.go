package assistant

import (
	"fmt"
	"strings"

	"recipe-chat/internal/core/recipe"
)

func analyzePrompt(text string) string {
	return fmt.Sprintf(`Analyze the following text related to food/recipes: "%s"
1. Detect the language (ISO 639-1 code, e.g., 'en', 'es', 'hi', 'fr').
2. Translate it to English if it's not in English.
3. Extract the core food search term (e.g., "pollo frito" -> "fried chicken").

Return ONLY a JSON object with this format:
{
  "language": "es",
  "translatedQuery": "fried chicken",
  "isGreeting": false
}`, text)
}

func translateTextPrompt(text, targetLang string, knownDishes []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Translate the following text to %s. Keep the tone friendly and helpful. ", targetLang)
	sb.WriteString("Do not translate proper nouns of dishes if they are widely known (like Pizza, Sushi) but translate descriptions. ")
	if len(knownDishes) > 0 {
		fmt.Fprintf(&sb, "Keep these dish names as they are: %s. ", strings.Join(knownDishes, ", "))
	}
	sb.WriteString("Return only the translated text. ")
	fmt.Fprintf(&sb, "Text: %q", text)
	return sb.String()
}

func translateRecipePrompt(r recipe.Recipe, targetLang string) string {
	return fmt.Sprintf(`Translate the following recipe details to %s:
Title: %s
Instructions: %s
Category: %s
Area: %s

Return ONLY a JSON object with the detected keys translated:
{
  "%s": "...",
  "%s": "...",
  "%s": "...",
  "%s": "..."
}`,
		targetLang,
		r.String(recipe.KeyTitle),
		r.String(recipe.KeyInstructions),
		r.String(recipe.KeyCategory),
		r.String(recipe.KeyArea),
		recipe.KeyTitle, recipe.KeyInstructions, recipe.KeyCategory, recipe.KeyArea,
	)
}
