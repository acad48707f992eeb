package model

import (
	"math"
	"strings"
)

// ParseTeamID パスパラメータのIDを先頭の数値部分だけで解釈する
// "2abc" は 2、"0x1f" は 31 になる。数字が一つもない場合やintに収まらない場合は
// ok=false を返し、どのチームにも一致しない扱いになる
func ParseTeamID(raw string) (id int, ok bool) {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	var value uint64
	digits := 0
	for _, r := range s {
		d, valid := digitValue(r, base)
		if !valid {
			break
		}
		if value > (math.MaxUint64-uint64(d))/uint64(base) {
			return 0, false
		}
		value = value*uint64(base) + uint64(d)
		digits++
	}
	if digits == 0 {
		return 0, false
	}

	if negative {
		if value > uint64(math.MaxInt)+1 {
			return 0, false
		}
		return int(-value), true
	}
	if value > uint64(math.MaxInt) {
		return 0, false
	}
	return int(value), true
}

func digitValue(r rune, base int) (int, bool) {
	var d int
	switch {
	case r >= '0' && r <= '9':
		d = int(r - '0')
	case r >= 'a' && r <= 'z':
		d = int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		d = int(r-'A') + 10
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}
	return d, true
}
