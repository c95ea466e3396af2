package cheque

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChineseInteger(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "零"},
		{1, "壹"},
		{10, "壹拾"},
		{25, "貳拾伍"},
		{100, "壹佰"},
		{102, "壹佰零貳"},
		{999, "玖佰玖拾玖"},
		{1001, "壹仟零壹"},
		{1010, "壹仟零壹拾"},
		{9999, "玖仟玖佰玖拾玖"},
		{10000, "壹萬"},
		{10001, "壹萬零壹"},
		{100100, "壹拾萬零壹佰"},
		{120034, "壹拾貳萬零叁拾肆"},
		{1000001, "壹佰萬零壹"},
		{100000000, "壹億"},
		{100000001, "壹億零壹"},     // two empty myriad groups collapse to one 零
		{10203040506, "壹佰零貳億零叁佰零肆萬零伍佰零陸"},
		{1000000000000, "壹兆"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, chineseInteger(tt.n), "n=%d", tt.n)
	}
}

func TestChineseCents(t *testing.T) {
	assert.Equal(t, "零伍分", chineseCents(5))
	assert.Equal(t, "肆角", chineseCents(40))
	assert.Equal(t, "肆角伍分", chineseCents(45))
	assert.Equal(t, "玖角玖分", chineseCents(99))
	assert.Equal(t, "零壹分", chineseCents(1))
}

// No rendering may ever contain two consecutive 零, whatever the gap
// pattern of the input.
func TestChineseNoConsecutiveZeros(t *testing.T) {
	samples := []uint64{
		0, 5, 10, 100, 101, 1001, 10001, 100001, 1000001, 10000001,
		100000001, 1000000001, 10000000001, 100000000001, 1000000000001,
		20050, 300400, 90000009, 505050505, 120034,
	}
	for _, n := range samples {
		s := chineseInteger(n)
		assert.NotContains(t, s, "零零", "n=%d rendered %q", n, s)
		assert.False(t, strings.HasSuffix(s, "零") && n != 0, "n=%d has trailing 零", n)
	}
}
