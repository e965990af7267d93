package recipe

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

var leadingNumber = regexp.MustCompile(`\d+`)

// ImportHTML extracts a recipe from an HTML page. It understands schema.org
// Recipe microdata and falls back to common class names, which covers the
// pages exported by the web frontend.
func ImportHTML(r io.Reader) (*Recipe, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	// Remove noise before extracting text
	doc.Find("script, style, nav, footer, iframe").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	rec := &Recipe{ID: uuid.NewString()}

	rec.Title = firstText(doc, `[itemprop="name"]`, "h1", "title")
	if rec.Title == "" {
		return nil, fmt.Errorf("no recipe title found in document")
	}

	selectors := []string{`[itemprop="recipeIngredient"]`, ".ingredients li", ".ingredient"}
	for _, sel := range selectors {
		doc.Find(sel).Each(func(i int, s *goquery.Selection) {
			if name := strings.TrimSpace(s.Text()); name != "" {
				rec.Ingredients = append(rec.Ingredients, name)
			}
		})
		if len(rec.Ingredients) > 0 {
			break
		}
	}
	if len(rec.Ingredients) == 0 {
		return nil, fmt.Errorf("no ingredients found in document")
	}

	if cal := firstText(doc, `[itemprop="calories"]`, ".calories"); cal != "" {
		if m := leadingNumber.FindString(cal); m != "" {
			rec.Calories, _ = strconv.Atoi(m)
		}
	}

	rec.CookTime = parseCookTime(doc)

	if mt := strings.ToLower(firstText(doc, `[itemprop="recipeCategory"]`, ".meal-type")); mt != "" {
		if parsed, err := ParseMealType(mt); err == nil {
			rec.MealType = parsed
		}
	}

	doc.Find(`[itemprop="keywords"], .recipe-tag`).Each(func(i int, s *goquery.Selection) {
		for _, tag := range strings.Split(s.Text(), ",") {
			if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
				rec.Tags = append(rec.Tags, tag)
			}
		}
	})

	return rec, nil
}

// parseCookTime reads cook time either from an ISO 8601 duration in the
// content attribute (e.g. "PT30M") or from visible text like "30 mins".
func parseCookTime(doc *goquery.Document) int {
	sel := doc.Find(`[itemprop="cookTime"], [itemprop="totalTime"]`).First()
	if content, ok := sel.Attr("content"); ok {
		if minutes := parseISODurationMinutes(content); minutes > 0 {
			return minutes
		}
	}
	text := strings.TrimSpace(sel.Text())
	if text == "" {
		text = firstText(doc, ".cook-time", ".prep-time")
	}
	if m := leadingNumber.FindString(text); m != "" {
		minutes, _ := strconv.Atoi(m)
		return minutes
	}
	return 0
}

func parseISODurationMinutes(s string) int {
	s = strings.ToUpper(strings.TrimPrefix(strings.ToUpper(s), "PT"))
	total := 0
	if i := strings.Index(s, "H"); i > 0 {
		if h, err := strconv.Atoi(s[:i]); err == nil {
			total += h * 60
		}
		s = s[i+1:]
	}
	if i := strings.Index(s, "M"); i > 0 {
		if m, err := strconv.Atoi(s[:i]); err == nil {
			total += m
		}
	}
	return total
}

// firstText returns the trimmed text of the first selector that matches.
func firstText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}
