package domain

// Category is a qualitative health category derived from an AQI value.
type Category string

const (
	CategoryGood                        Category = "good"
	CategoryModerate                    Category = "moderate"
	CategoryUnhealthyForSensitiveGroups Category = "unhealthy_for_sensitive_groups"
	CategoryUnhealthy                   Category = "unhealthy"
	CategoryVeryUnhealthy               Category = "very_unhealthy"
	CategoryHazardous                   Category = "hazardous"
)

// Color is a display color understood by the presentation layer.
type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
	ColorPurple Color = "purple"
	ColorMaroon Color = "maroon"

	// Concentration rankings are not classified; each list gets one hue.
	ColorMostPolluted  Color = "#cb4154"
	ColorLeastPolluted Color = "#a3e77f"
)

// Label returns the wording shown in legends.
func (c Category) Label() string {
	switch c {
	case CategoryGood:
		return "good"
	case CategoryModerate:
		return "moderate"
	case CategoryUnhealthyForSensitiveGroups:
		return "unhealthy to sensitive groups"
	case CategoryUnhealthy:
		return "unhealthy"
	case CategoryVeryUnhealthy:
		return "very unhealthy"
	case CategoryHazardous:
		return "hazardous"
	default:
		return string(c)
	}
}

type categoryThreshold struct {
	min      float64
	category Category
	color    Color
}

// Highest first; the first threshold the value reaches wins.
var categoryThresholds = []categoryThreshold{
	{250, CategoryHazardous, ColorMaroon},
	{150, CategoryVeryUnhealthy, ColorPurple},
	{55, CategoryUnhealthy, ColorRed},
	{35, CategoryUnhealthyForSensitiveGroups, ColorOrange},
	{12, CategoryModerate, ColorYellow},
}

// ClassifyAQI maps an AQI score to its category and color. Scores above 500
// are hazardous and negative scores are good.
func ClassifyAQI(score int) (Category, Color) {
	return ClassifyMean(float64(score))
}

// ClassifyMean applies the category thresholds to a mean AQI without rounding
// it first, so 54.6 is still unhealthy for sensitive groups.
func ClassifyMean(value float64) (Category, Color) {
	for _, t := range categoryThresholds {
		if value >= t.min {
			return t.category, t.color
		}
	}
	return CategoryGood, ColorGreen
}

// CategoryLegend lists every category with its color, lowest first.
func CategoryLegend() []CategoryColor {
	legend := make([]CategoryColor, 0, len(categoryThresholds)+1)
	legend = append(legend, CategoryColor{Category: CategoryGood, Color: ColorGreen})
	for i := len(categoryThresholds) - 1; i >= 0; i-- {
		t := categoryThresholds[i]
		legend = append(legend, CategoryColor{Category: t.category, Color: t.color})
	}
	return legend
}

// CategoryColor pairs a category with its display color.
type CategoryColor struct {
	Category Category `json:"category"`
	Color    Color    `json:"color"`
}
