package models

// PisteColor цвет трассы, обозначающий уровень сложности.
type PisteColor string

const (
	// ColorGreen — зелёная трасса, для начинающих.
	ColorGreen PisteColor = "GREEN"
	// ColorBlue — синяя трасса.
	ColorBlue PisteColor = "BLUE"
	// ColorRed — красная трасса.
	ColorRed PisteColor = "RED"
	// ColorBlack — чёрная трасса, для опытных.
	ColorBlack PisteColor = "BLACK"
)

// Piste представляет трассу станции. Бизнес-правил к трассе не привязано.
type Piste struct {
	ID     int        // Уникальный идентификатор трассы
	Name   string     // Название трассы
	Color  PisteColor // Цвет (сложность)
	Length int        // Длина в метрах
	Slope  int        // Уклон в процентах
}

// DummyPiste используется для приёма данных трассы из JSON-запроса.
type DummyPiste struct {
	Name   string `json:"named_piste" validate:"required"` // Название трассы
	Color  string `json:"color" validate:"required"`       // Цвет трассы
	Length int    `json:"length" validate:"required,gt=0"` // Длина в метрах (>0)
	Slope  int    `json:"slope,omitempty"`                 // Уклон в процентах (опционально)
}
