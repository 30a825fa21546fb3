// Package age содержит вычисление возраста в полных годах.
package age

import "time"

// Years возвращает возраст в полных годах на дату at.
// День рождения учитывается: если он в году at ещё не наступил, год не засчитывается.
func Years(birth, at time.Time) int {
	years := at.Year() - birth.Year()
	anniversary := birth.AddDate(years, 0, 0)
	if anniversary.After(at) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
