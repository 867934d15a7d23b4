package order

import (
	"food-order-api/entities"
	"strings"
)

// SplitIngredients tokenizes a recipe's free-text ingredient list. Lists that
// contain a comma are split on commas, anything else on whitespace. Empty
// tokens are dropped.
func SplitIngredients(ingredients string) []string {
	var parts []string
	if strings.Contains(ingredients, ",") {
		parts = strings.Split(ingredients, ",")
	} else {
		parts = strings.Fields(ingredients)
	}

	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// AggregateIngredients returns the distinct ingredient tokens across all item
// recipes, in first-seen order. Items without a recipe are skipped.
func AggregateIngredients(items []entities.OrderItem) []string {
	seen := make(map[string]struct{})
	all := make([]string, 0)
	for _, item := range items {
		if item.Recipe == nil {
			continue
		}
		for _, token := range SplitIngredients(item.Recipe.Ingredients) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			all = append(all, token)
		}
	}
	return all
}
