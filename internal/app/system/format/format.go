// internal/app/system/format/format.go
//
// Package format holds the display helpers shared by templates: currency,
// schedule day names, and relative timestamps for the activity feed.
package format

import (
	"fmt"
	"strings"
	"time"
)

var dayNames = [...]string{
	"Thứ Hai", "Thứ Ba", "Thứ Tư", "Thứ Năm", "Thứ Sáu", "Thứ Bảy", "Chủ Nhật",
}

// DayName maps a schedule day index (0 = Thứ Hai) to its Vietnamese name.
func DayName(day int) string {
	if day < 0 || day >= len(dayNames) {
		return fmt.Sprintf("Ngày %d", day)
	}
	return dayNames[day]
}

// VND renders an amount in Vietnamese đồng with thousands separators:
// 1500000 -> "1.500.000 ₫".
func VND(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := b.String() + " ₫"
	if neg {
		out = "-" + out
	}
	return out
}

// TimeAgo renders t relative to now for the activity feed. Zero times
// render as "-".
func TimeAgo(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}

	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Vừa xong"
	case d < time.Hour:
		return fmt.Sprintf("%d phút trước", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d giờ trước", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%d ngày trước", int(d.Hours()/24))
	default:
		return t.Format("02/01/2006")
	}
}
