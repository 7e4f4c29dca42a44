package dbsapi

import "strings"

// House is one of the school's four houses.
type House string

// Houses.
const (
	HouseRed    House = "Red"
	HouseGreen  House = "Green"
	HouseBlue   House = "Blue"
	HouseYellow House = "Yellow"
)

// HousePoints maps a house to its current point total.
type HousePoints map[House]int

// houseColors maps the lowercase hex background of a points cell to its house.
var houseColors = map[string]House{
	"d62828": HouseRed,
	"007a3d": HouseGreen,
	"003f87": HouseBlue,
	"fcd856": HouseYellow,
}

// HouseForColor returns the house whose cell uses the given CSS color.
// Surrounding whitespace, a leading '#' and hex letter case are ignored.
func HouseForColor(color string) (House, bool) {
	color = strings.TrimPrefix(strings.TrimSpace(color), "#")
	house, ok := houseColors[strings.ToLower(color)]
	return house, ok
}
