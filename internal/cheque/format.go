package cheque

// ChineseAmount renders the full Chinese amount including 元 and the cents
// suffix: 正 for whole-dollar amounts, 角/分 wording otherwise.
func ChineseAmount(a Amount) string {
	s := chineseInteger(a.Dollars) + "元"
	if a.Cents == 0 {
		return s + "正"
	}
	return s + chineseCents(a.Cents)
}

// EnglishAmount renders the full English amount, appending the cents
// clause when cents are present.
func EnglishAmount(a Amount) string {
	s := englishInteger(a.Dollars)
	if a.Cents > 0 {
		s += " and " + englishCents(a.Cents)
	}
	return s
}

// Lines renders the two cheque lines printed by the CLI, Chinese first.
func Lines(a Amount) (zh, en string) {
	zh = "中文：港幣" + ChineseAmount(a)
	en = "English: Hong Kong Dollars " + EnglishAmount(a) + " only"
	return zh, en
}
