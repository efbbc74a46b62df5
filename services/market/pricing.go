package market

// SeatPrice derives the tenant-wide seat price from aggregate student wealth.
// The price is floor(totalAssets * 0.6 / studentCount), computed in integer
// arithmetic as totalAssets*6/10/studentCount. A classroom with no wealth or
// no students gets basePrice, and the result never drops below minPrice.
func SeatPrice(totalAssets int64, studentCount int, basePrice, minPrice int64) int64 {
	if studentCount <= 0 || totalAssets <= 0 {
		return basePrice
	}

	price := totalAssets * 6 / 10 / int64(studentCount)
	if price < minPrice {
		return minPrice
	}
	return price
}
