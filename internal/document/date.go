package document

// MRZ dates carry a two-digit year. Years above the pivot are read as 19YY,
// the rest as 20YY.
const centuryPivot = 50

// NormalizeDate turns an MRZ date (YYMMDD) into YYYY-MM-DD. Anything that is
// not exactly six digits is returned unchanged.
func NormalizeDate(s string) string {
	if len(s) != 6 || !allDigits(s) {
		return s
	}
	yy := int(s[0]-'0')*10 + int(s[1]-'0')
	century := "20"
	if yy > centuryPivot {
		century = "19"
	}
	return century + s[0:2] + "-" + s[2:4] + "-" + s[4:6]
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
