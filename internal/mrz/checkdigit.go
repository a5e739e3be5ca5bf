package mrz

var weights = [3]int{7, 3, 1}

// CheckDigit computes the ICAO 9303 check digit of data.
func CheckDigit(data string) int {
	sum, pos := 0, 0
	for _, r := range data {
		sum += charValue(r) * weights[pos%len(weights)]
		pos++
	}
	return sum % 10
}

func charValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	default:
		// '<' is the filler and maps to zero; unexpected characters do too.
		return 0
	}
}
