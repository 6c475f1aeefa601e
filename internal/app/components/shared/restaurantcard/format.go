package restaurantcard

import "strconv"

// IconStyle is the visual style of the favorite heart.
type IconStyle struct {
	Filled bool
	Class  string
}

var (
	notFavoritedIcon = IconStyle{Filled: false, Class: "text-gray-500"}
	favoritedIcon    = IconStyle{Filled: true, Class: "text-red-500 fill-current"}
)

// FavoriteIcon maps the favorite flag to the heart style: an outlined gray
// heart when false and a filled red heart when true.
func FavoriteIcon(favorite bool) IconStyle {
	if favorite {
		return favoritedIcon
	}
	return notFavoritedIcon
}

// FormatRating formats a rating with one decimal, e.g. 4.5 -> "4.5", 4 -> "4.0".
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', 1, 64)
}

// FormatDeliveryTime formats a delivery time as "<n> min".
func FormatDeliveryTime(minutes int) string {
	return strconv.Itoa(minutes) + " min"
}
