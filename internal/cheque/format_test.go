package cheque

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Worked cheque scenarios, end to end from the input string.
func TestLinesScenarios(t *testing.T) {
	tests := []struct {
		in string
		zh string
		en string
	}{
		{
			in: "0",
			zh: "中文：港幣零元正",
			en: "English: Hong Kong Dollars Zero only",
		},
		{
			in: "1001",
			zh: "中文：港幣壹仟零壹元正",
			en: "English: Hong Kong Dollars One thousand and one only",
		},
		{
			in: "1000001",
			zh: "中文：港幣壹佰萬零壹元正",
			en: "English: Hong Kong Dollars One million and one only",
		},
		{
			in: "120034",
			zh: "中文：港幣壹拾貳萬零叁拾肆元正",
			en: "English: Hong Kong Dollars One hundred and twenty thousand and thirty-four only",
		},
		{
			in: "123.45",
			zh: "中文：港幣壹佰貳拾叁元肆角伍分",
			en: "English: Hong Kong Dollars One hundred and twenty-three and forty-five cents only",
		},
		{
			in: "0.05",
			zh: "中文：港幣零元零伍分",
			en: "English: Hong Kong Dollars Zero and five cents only",
		},
		{
			in: "123.4",
			zh: "中文：港幣壹佰貳拾叁元肆角",
			en: "English: Hong Kong Dollars One hundred and twenty-three and forty cents only",
		},
		{
			in: "1.01",
			zh: "中文：港幣壹元零壹分",
			en: "English: Hong Kong Dollars One and one cent only",
		},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a, err := ParseAmount(tt.in)
			require.NoError(t, err)
			zh, en := Lines(a)
			assert.Equal(t, tt.zh, zh)
			assert.Equal(t, tt.en, en)
		})
	}
}

// Rendering is pure: the same amount always yields the same strings.
func TestLinesIdempotent(t *testing.T) {
	a := Amount{Dollars: 120034, Cents: 45}
	zh1, en1 := Lines(a)
	zh2, en2 := Lines(a)
	assert.Equal(t, zh1, zh2)
	assert.Equal(t, en1, en2)
}
