package schedule

import (
	"fmt"
	"regexp"
	"strconv"
)

var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidTimeHHMM aceita somente HH:MM em 24h (00:00 a 23:59)
func IsValidTimeHHMM(v string) bool {
	return hhmmPattern.MatchString(v)
}

// TimeToMinutes converte HH:MM em minutos desde a meia-noite.
// O chamador deve validar o formato antes.
func TimeToMinutes(v string) int {
	if len(v) < 5 {
		return 0
	}
	hh, _ := strconv.Atoi(v[:2])
	mm, _ := strconv.Atoi(v[3:5])
	return hh*60 + mm
}

// MinutesToTime é o inverso de TimeToMinutes, dando a volta em 24h
func MinutesToTime(m int) string {
	m %= 24 * 60
	if m < 0 {
		m += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
