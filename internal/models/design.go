package models

// Category is the fixed set of embroidery catalog categories. Values
// are the display strings shown in the storefront.
type Category string

const (
	CategoryBridal         Category = "Bridal Designs"
	CategoryKids           Category = "Kids Designs"
	CategoryBlouse         Category = "Blouse Designs"
	CategorySareeBorder    Category = "Saree Border Designs"
	CategoryNameEmbroidery Category = "Name Embroidery"
	CategoryCustom         Category = "Custom Orders"
)

// Categories lists every catalog category in display order.
func Categories() []Category {
	return []Category{
		CategoryBridal,
		CategoryKids,
		CategoryBlouse,
		CategorySareeBorder,
		CategoryNameEmbroidery,
		CategoryCustom,
	}
}

func ParseCategory(value string) (Category, bool) {
	for _, c := range Categories() {
		if Category(value) == c {
			return c, true
		}
	}
	return "", false
}

// Design is a catalog item. A design needs at least one image to be
// visible in the storefront; it is immutable once added.
type Design struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
}
