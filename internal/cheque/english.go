package cheque

import "strings"

var enOnes = [20]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var enTens = [10]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

var enScales = [5]string{"", "thousand", "million", "billion", "trillion"}

// underHundred renders 0..99, hyphenating 21..99 non-multiples of ten.
func underHundred(n int) string {
	if n < 20 {
		return enOnes[n]
	}
	tens, rest := n/10, n%10
	if rest == 0 {
		return enTens[tens]
	}
	return enTens[tens] + "-" + enOnes[rest]
}

// underThousand renders 0..999 with the British "and" between the hundreds
// and the remainder (102 → "one hundred and two").
func underThousand(n int) string {
	hundreds, rest := n/100, n%100
	if hundreds == 0 {
		return underHundred(rest)
	}
	s := enOnes[hundreds] + " hundred"
	if rest > 0 {
		s += " and " + underHundred(rest)
	}
	return s
}

// englishInteger renders a non-negative integer in English words per the
// HK cheque convention: "and" joins the final group when higher groups
// exist and the final group is under 100 (1010 → "one thousand and ten").
// Only the first letter is capitalised.
func englishInteger(n uint64) string {
	if n == 0 {
		return "Zero"
	}

	groups := splitGroups(n, thousandBase)

	var parts []string
	var values []int
	for idx := len(groups) - 1; idx >= 0; idx-- {
		g := groups[idx]
		if g == 0 {
			continue
		}
		seg := underThousand(g)
		if enScales[idx] != "" {
			seg += " " + enScales[idx]
		}
		parts = append(parts, seg)
		values = append(values, g)
	}

	var words string
	if last := len(parts) - 1; last > 0 && values[last] < 100 {
		words = strings.Join(parts[:last], " ") + " and " + parts[last]
	} else {
		words = strings.Join(parts, " ")
	}
	return strings.ToUpper(words[:1]) + words[1:]
}

// englishCents renders the cents clause for cents in [1,99], singular for
// exactly one cent.
func englishCents(cents int) string {
	if cents == 1 {
		return "one cent"
	}
	return underHundred(cents) + " cents"
}
