// Package period содержит вычисления периода действия абонемента:
// дату окончания из типа и даты начала, а также дату окончания при продлении.
package period

import (
	"fmt"
	"time"

	"github.com/magabrotheeeer/ski-station/internal/models"
)

// EndDate вычисляет дату окончания абонемента: start плюс длительность типа.
// Для неизвестного или пустого типа возвращает models.ErrInvalidSubscriptionType.
func EndDate(t models.SubscriptionType, start time.Time) (time.Time, error) {
	const op = "period.EndDate"
	months := t.Months()
	if months == 0 {
		return time.Time{}, fmt.Errorf("%s: %w: %q", op, models.ErrInvalidSubscriptionType, t)
	}
	return start.AddDate(0, months, 0), nil
}

// Renew вычисляет дату окончания при продлении абонемента.
// Новая дата отсчитывается от поздней из двух: текущей даты окончания и today.
// Действующий абонемент продлевается от своей даты окончания,
// просроченный — заново от дня продления.
func Renew(t models.SubscriptionType, end, today time.Time) (time.Time, error) {
	const op = "period.Renew"
	months := t.Months()
	if months == 0 {
		return time.Time{}, fmt.Errorf("%s: %w: %q", op, models.ErrInvalidSubscriptionType, t)
	}
	base := end
	if today.After(end) {
		base = today
	}
	return base.AddDate(0, months, 0), nil
}
