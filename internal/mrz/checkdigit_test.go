package mrz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckDigit(t *testing.T) {
	t.Run("ICAO 9303 worked examples", func(t *testing.T) {
		assert.Equal(t, 7, CheckDigit("D23145890"), "TD1 document number D23145890<7")
		assert.Equal(t, 6, CheckDigit("L898902C3"), "TD3 passport number L898902C3<6")
		assert.Equal(t, 2, CheckDigit("740812"), "birth date 740812 2")
		assert.Equal(t, 9, CheckDigit("120415"), "expiry date 120415 9")
	})

	t.Run("letters map from 10", func(t *testing.T) {
		assert.Equal(t, 0, CheckDigit("A"), "A=10, 10*7=70")
		assert.Equal(t, 5, CheckDigit("Z"), "Z=35, 35*7=245")
		assert.Equal(t, 3, CheckDigit("0B"), "B=11, 11*3=33")
	})

	t.Run("filler contributes zero in any position", func(t *testing.T) {
		assert.Equal(t, 0, CheckDigit("<"))
		assert.Equal(t, CheckDigit("1"), CheckDigit("1<<"))
		assert.Equal(t, CheckDigit("12"), CheckDigit("12<"))
		assert.Equal(t, CheckDigit("0001"), CheckDigit("<<<1"))
	})

	t.Run("weights cycle every three characters", func(t *testing.T) {
		assert.Equal(t, 7, CheckDigit("0001"), "fourth position reuses weight 7")
		assert.Equal(t, 3, CheckDigit("01"))
		assert.Equal(t, 1, CheckDigit("001"))
		assert.Equal(t, CheckDigit("1"), CheckDigit("0001"))
	})

	t.Run("unexpected characters count as zero", func(t *testing.T) {
		assert.Equal(t, 0, CheckDigit("a"))
		assert.Equal(t, CheckDigit("1<3"), CheckDigit("1-3"))
		assert.Equal(t, CheckDigit("1<3"), CheckDigit("1Ñ3"), "non-ASCII letters take one position")
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, 0, CheckDigit(""))
	})

	t.Run("repeatable", func(t *testing.T) {
		for range 3 {
			assert.Equal(t, 8, CheckDigit("12345678"))
		}
	})
}
