package authoring

import "fmt"

// Freemium content key types.
const (
	FreemiumModule = "module"
	FreemiumLesson = "lesson"
)

// ContentKey builds the composite key identifying a module or lesson inside
// pricing.freemiumContent.
func ContentKey(contentType, contentID string) string {
	return fmt.Sprintf("%s_%s", contentType, contentID)
}

// IsFreemiumContent reports whether a module or lesson is offered as a free
// preview.
func IsFreemiumContent(p Pricing, contentType, contentID string) bool {
	key := ContentKey(contentType, contentID)
	for _, k := range p.FreemiumContent {
		if k == key {
			return true
		}
	}
	return false
}

// FormatPrice renders a naira amount with two decimals.
func FormatPrice(price float64) string {
	return fmt.Sprintf("₦%.2f", price)
}

// PricingLabel is the display line for the review step.
func PricingLabel(p Pricing) string {
	switch p.CourseType {
	case CourseTypeFreemium:
		return fmt.Sprintf("Freemium Course (Full access: %s)", FormatPrice(p.Price))
	case CourseTypePaid:
		return fmt.Sprintf("Paid Course (%s)", FormatPrice(p.Price))
	default:
		return "Free Course"
	}
}
