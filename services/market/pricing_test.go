package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testBasePrice = 100000
	testMinPrice  = 10000
)

func TestSeatPrice_EmptyClassroomGetsBasePrice(t *testing.T) {
	assert.Equal(t, int64(100000), SeatPrice(0, 0, testBasePrice, testMinPrice))
	assert.Equal(t, int64(100000), SeatPrice(0, 5, testBasePrice, testMinPrice))
	assert.Equal(t, int64(100000), SeatPrice(500000, 0, testBasePrice, testMinPrice))
}

func TestSeatPrice_Formula(t *testing.T) {
	// floor(1,000,000 * 0.6 / 3) = 200,000
	assert.Equal(t, int64(200000), SeatPrice(1000000, 3, testBasePrice, testMinPrice))
}

func TestSeatPrice_FlooredAtMinimum(t *testing.T) {
	// floor(100,000 * 0.6 / 10) = 6,000 which is under the floor
	assert.Equal(t, int64(10000), SeatPrice(100000, 10, testBasePrice, testMinPrice))
}

func TestSeatPrice_TruncatesTowardZero(t *testing.T) {
	// floor(100,001 * 0.6 / 1) = floor(60,000.6) = 60,000
	assert.Equal(t, int64(60000), SeatPrice(100001, 1, testBasePrice, testMinPrice))

	// floor(1,000,000 * 0.6 / 7) = floor(85,714.28) = 85,714
	assert.Equal(t, int64(85714), SeatPrice(1000000, 7, testBasePrice, testMinPrice))
}

func TestSeatPrice_ManualCountChangesDivisor(t *testing.T) {
	full := SeatPrice(1000000, 3, testBasePrice, testMinPrice)
	halved := SeatPrice(1000000, 6, testBasePrice, testMinPrice)
	assert.Equal(t, full/2, halved)
}
