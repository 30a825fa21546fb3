package models

// Registration представляет запись лыжника на курс в конкретную неделю сезона.
// Тройка (NumWeek, Skier, Course) уникальна: повторная запись на тот же курс
// в ту же неделю не допускается. Ссылки на лыжника и курс могут отсутствовать,
// пока запись не привязана соответствующей операцией.
type Registration struct {
	ID      int     // Уникальный идентификатор записи
	NumWeek int     // Номер недели сезона (порядковый, без календарной семантики)
	Skier   *Skier  // Привязанный лыжник (может быть nil)
	Course  *Course // Привязанный курс (может быть nil)
}

// DummyRegistration используется для приёма данных записи из JSON-запроса.
type DummyRegistration struct {
	NumWeek int `json:"num_week" validate:"required,min=1"` // Номер недели (>=1)
}
