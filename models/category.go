// File: models/category.go
package models

// Category is one entry of the backend's category list.
type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DefaultCategory is applied to new tournaments until the user picks one.
const DefaultCategory = "general"

// categoryColors keeps category badges consistent across every page.
var categoryColors = map[string]string{
	"anime":        "#FF6B9D",
	"nature":       "#4CAF50",
	"architecture": "#2196F3",
	"people":       "#FF9800",
	"animals":      "#795548",
	"food":         "#E91E63",
	"art":          "#9C27B0",
	"technology":   "#607D8B",
	"sports":       "#F44336",
	"general":      "#757575",
}

// CategoryColor returns the badge color for a category value, with the
// neutral "general" grey as the fallback for unknown values.
func CategoryColor(value string) string {
	if color, ok := categoryColors[value]; ok {
		return color
	}
	return categoryColors["general"]
}

// DefaultCategories is the local fallback list used when the category
// endpoint is unreachable, mirroring the backend's choices.
func DefaultCategories() []Category {
	return []Category{
		{Value: "general", Label: "General"},
		{Value: "anime", Label: "Anime"},
		{Value: "nature", Label: "Nature"},
		{Value: "architecture", Label: "Architecture"},
		{Value: "people", Label: "People"},
		{Value: "animals", Label: "Animals"},
		{Value: "food", Label: "Food"},
		{Value: "art", Label: "Art"},
		{Value: "technology", Label: "Technology"},
		{Value: "sports", Label: "Sports"},
	}
}
