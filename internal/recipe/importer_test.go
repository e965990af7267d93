package recipe

import (
	"strings"
	"testing"
)

const microdataHTML = `
<html><head><title>Some Food Blog</title></head><body>
<script>console.log("noise")</script>
<div itemscope itemtype="https://schema.org/Recipe">
  <h1 itemprop="name">Chickpea Curry</h1>
  <span itemprop="recipeCategory">Dinner</span>
  <meta itemprop="cookTime" content="PT40M">
  <span itemprop="calories">520 kcal</span>
  <ul>
    <li itemprop="recipeIngredient">1 can chickpeas</li>
    <li itemprop="recipeIngredient">coconut milk</li>
    <li itemprop="recipeIngredient">curry paste</li>
  </ul>
  <span itemprop="keywords">vegan, gluten-free</span>
</div>
</body></html>`

const plainHTML = `
<html><body>
<h1>Greek Salad</h1>
<div class="ingredients"><ul><li>cucumber</li><li>feta</li><li>olives</li></ul></div>
<span class="calories">310</span>
<span class="cook-time">15 mins</span>
</body></html>`

func TestImportHTML(t *testing.T) {
	t.Run("Microdata", func(t *testing.T) {
		rec, err := ImportHTML(strings.NewReader(microdataHTML))
		if err != nil {
			t.Fatalf("ImportHTML failed: %v", err)
		}
		if rec.Title != "Chickpea Curry" {
			t.Errorf("Expected title 'Chickpea Curry', got '%s'", rec.Title)
		}
		if rec.Calories != 520 {
			t.Errorf("Expected 520 calories, got %d", rec.Calories)
		}
		if rec.CookTime != 40 {
			t.Errorf("Expected 40 minute cook time, got %d", rec.CookTime)
		}
		if rec.MealType != MealDinner {
			t.Errorf("Expected meal type dinner, got '%s'", rec.MealType)
		}
		if len(rec.Ingredients) != 3 {
			t.Errorf("Expected 3 ingredients, got %d", len(rec.Ingredients))
		}
		if len(rec.Tags) != 2 || rec.Tags[0] != "vegan" {
			t.Errorf("Expected tags [vegan gluten-free], got %v", rec.Tags)
		}
		if rec.ID == "" {
			t.Error("Expected an id to be assigned")
		}
	})

	t.Run("ClassNameFallbacks", func(t *testing.T) {
		rec, err := ImportHTML(strings.NewReader(plainHTML))
		if err != nil {
			t.Fatalf("ImportHTML failed: %v", err)
		}
		if rec.Title != "Greek Salad" {
			t.Errorf("Expected title 'Greek Salad', got '%s'", rec.Title)
		}
		if rec.Calories != 310 {
			t.Errorf("Expected 310 calories, got %d", rec.Calories)
		}
		if rec.CookTime != 15 {
			t.Errorf("Expected 15 minute cook time, got %d", rec.CookTime)
		}
		if rec.MealType != "" {
			t.Errorf("Expected untagged meal type, got '%s'", rec.MealType)
		}
	})

	t.Run("NoTitle", func(t *testing.T) {
		_, err := ImportHTML(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
		if err == nil {
			t.Fatal("Expected an error for a page without a recipe, got nil")
		}
	})

	t.Run("NoIngredients", func(t *testing.T) {
		_, err := ImportHTML(strings.NewReader("<html><body><h1>Just a headline</h1></body></html>"))
		if err == nil {
			t.Fatal("Expected an error for a page without ingredients, got nil")
		}
	})
}
