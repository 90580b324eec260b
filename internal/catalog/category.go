package catalog

// Category groups tools in the sidebar. The string values are the ones used
// in catalog files.
type Category string

const (
	// CategoryAll is the sentinel meaning "no category filter".
	CategoryAll Category = "all"

	CategoryAI           Category = "ia"
	CategoryDesign       Category = "design"
	CategoryPDF          Category = "pdf"
	CategoryProductivity Category = "produtividade"
	CategoryDev          Category = "dev"
	CategoryMarketing    Category = "marketing"
	CategoryMultimedia   Category = "multimidia"
	CategoryWriting      Category = "escrita"
	CategorySecurity     Category = "seguranca"
	CategorySocial       Category = "social"
)

// AllToolsLabel is the title shown when no category filter is active.
const AllToolsLabel = "All Tools"

var categoryLabels = map[Category]string{
	CategoryAll:          AllToolsLabel,
	CategoryAI:           "AI & Innovation",
	CategoryDesign:       "Design & Creativity",
	CategoryPDF:          "PDF & Documents",
	CategoryProductivity: "Productivity",
	CategoryDev:          "Dev & Hosting",
	CategoryMarketing:    "Digital Marketing",
	CategoryMultimedia:   "Multimedia",
	CategoryWriting:      "Writing & Text",
	CategorySecurity:     "Security & Privacy",
	CategorySocial:       "Social & Communication",
}

// sidebar order
var categoryOrder = []Category{
	CategoryAI,
	CategoryDesign,
	CategoryPDF,
	CategoryProductivity,
	CategoryDev,
	CategoryMarketing,
	CategoryMultimedia,
	CategoryWriting,
	CategorySecurity,
	CategorySocial,
}

// Categories returns the known categories in sidebar order, without
// CategoryAll.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Label returns the display label, or the raw value for categories that have
// no label yet.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Known reports whether c has a display label.
func (c Category) Known() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory accepts any non-empty value; unknown categories are valid
// because catalogs may carry categories this build has no label for.
func ParseCategory(s string) Category {
	if s == "" {
		return CategoryAll
	}
	return Category(s)
}

// Tag is a pricing/licensing label attached to a tool.
type Tag string

const (
	TagFree       Tag = "free"
	TagFreemium   Tag = "freemium"
	TagOpenSource Tag = "open-source"
)

var tagLabels = map[Tag]string{
	TagFree:       "Free",
	TagFreemium:   "Freemium",
	TagOpenSource: "Open Source",
}

var tagOrder = []Tag{TagFree, TagFreemium, TagOpenSource}

// Tags returns the tag vocabulary in display order.
func Tags() []Tag {
	out := make([]Tag, len(tagOrder))
	copy(out, tagOrder)
	return out
}

func (t Tag) Label() string {
	if label, ok := tagLabels[t]; ok {
		return label
	}
	return string(t)
}
