package cheque

import "strings"

// Financial-uppercase digit characters used on HK cheques.
var zhDigits = [10]string{"零", "壹", "貳", "叁", "肆", "伍", "陸", "柒", "捌", "玖"}

// Unit words inside a 4-digit group, least significant first.
var zhUnits = [4]string{"", "拾", "佰", "仟"}

// Scale words between 4-digit groups, lowest group first.
var zhScales = [4]string{"", "萬", "億", "兆"}

// chineseGroup renders 0..9999 in financial uppercase without a scale word.
// Explicit tens are used (10 → 壹拾), internal runs of zeros collapse to a
// single 零, and the group never starts with 零.
func chineseGroup(n int) string {
	if n == 0 {
		return ""
	}

	digits := [4]int{n / 1000 % 10, n / 100 % 10, n / 10 % 10, n % 10}

	var b strings.Builder
	zeroPending := false
	for i, d := range digits {
		if d == 0 {
			zeroPending = true
			continue
		}
		if zeroPending {
			if b.Len() > 0 {
				b.WriteString(zhDigits[0])
			}
			zeroPending = false
		}
		b.WriteString(zhDigits[d])
		b.WriteString(zhUnits[3-i])
	}
	return b.String()
}

// chineseInteger renders a non-negative integer in HK financial uppercase,
// grouped by the myriad scale. A single 零 marks a gap when empty groups
// were crossed, or when a lower group has internal leading zeros
// (1,000,001 → 壹佰萬零壹). Consecutive 零 never appear.
func chineseInteger(n uint64) string {
	if n == 0 {
		return zhDigits[0]
	}

	groups := splitGroups(n, myriadBase)

	var b strings.Builder
	zeroPending := false
	for idx := len(groups) - 1; idx >= 0; idx-- {
		g := groups[idx]
		if g == 0 {
			if b.Len() > 0 {
				zeroPending = true
			}
			continue
		}
		if b.Len() > 0 && (zeroPending || g < 1000) {
			b.WriteString(zhDigits[0])
			zeroPending = false
		}
		b.WriteString(chineseGroup(g))
		b.WriteString(zhScales[idx])
	}
	return b.String()
}

// chineseCents renders the 角/分 suffix for cents in [1,99]. The tens digit
// carries 角, the units digit carries 分, and a lone units digit is
// prefixed with 零 (5 → 零伍分, 40 → 肆角, 45 → 肆角伍分).
func chineseCents(cents int) string {
	tens, units := cents/10, cents%10

	var b strings.Builder
	if tens > 0 {
		b.WriteString(zhDigits[tens])
		b.WriteString("角")
	}
	if units > 0 {
		if tens == 0 {
			b.WriteString(zhDigits[0])
		}
		b.WriteString(zhDigits[units])
		b.WriteString("分")
	}
	return b.String()
}
