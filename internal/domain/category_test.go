package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyAQI(t *testing.T) {
	cases := []struct {
		score    int
		category Category
		color    Color
	}{
		{-5, CategoryGood, ColorGreen},
		{0, CategoryGood, ColorGreen},
		{11, CategoryGood, ColorGreen},
		{12, CategoryModerate, ColorYellow},
		{34, CategoryModerate, ColorYellow},
		{35, CategoryUnhealthyForSensitiveGroups, ColorOrange},
		{54, CategoryUnhealthyForSensitiveGroups, ColorOrange},
		{55, CategoryUnhealthy, ColorRed},
		{149, CategoryUnhealthy, ColorRed},
		{150, CategoryVeryUnhealthy, ColorPurple},
		{249, CategoryVeryUnhealthy, ColorPurple},
		{250, CategoryHazardous, ColorMaroon},
		{500, CategoryHazardous, ColorMaroon},
		{731, CategoryHazardous, ColorMaroon},
	}
	for _, tc := range cases {
		category, color := ClassifyAQI(tc.score)
		assert.Equal(t, tc.category, category, "score %d", tc.score)
		assert.Equal(t, tc.color, color, "score %d", tc.score)
	}
}

func TestClassifyMean_DoesNotRound(t *testing.T) {
	category, _ := ClassifyMean(54.6)
	assert.Equal(t, CategoryUnhealthyForSensitiveGroups, category)

	category, _ = ClassifyMean(11.99)
	assert.Equal(t, CategoryGood, category)
}

func TestCategoryLegend(t *testing.T) {
	legend := CategoryLegend()
	assert.Equal(t, []CategoryColor{
		{CategoryGood, ColorGreen},
		{CategoryModerate, ColorYellow},
		{CategoryUnhealthyForSensitiveGroups, ColorOrange},
		{CategoryUnhealthy, ColorRed},
		{CategoryVeryUnhealthy, ColorPurple},
		{CategoryHazardous, ColorMaroon},
	}, legend)
	assert.Equal(t, "unhealthy to sensitive groups", CategoryUnhealthyForSensitiveGroups.Label())
	assert.Equal(t, "very unhealthy", CategoryVeryUnhealthy.Label())
}
