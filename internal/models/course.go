package models

// CourseType тип курса: индивидуальный или коллективный (детский/взрослый).
type CourseType string

const (
	// CourseIndividual — индивидуальный курс без возрастных ограничений.
	CourseIndividual CourseType = "INDIVIDUAL"
	// CourseCollectiveChildren — детский коллективный курс (возраст строго меньше порога).
	CourseCollectiveChildren CourseType = "COLLECTIVE_CHILDREN"
	// CourseCollectiveAdult — взрослый коллективный курс (возраст не меньше порога).
	CourseCollectiveAdult CourseType = "COLLECTIVE_ADULT"
)

// Support спортивная дисциплина курса.
type Support string

const (
	// SupportSki — горные лыжи.
	SupportSki Support = "SKI"
	// SupportSnowboard — сноуборд.
	SupportSnowboard Support = "SNOWBOARD"
)

// Course представляет курс обучения. Type и Support могут быть пустыми —
// незаполненный тип означает, что возрастная проверка при записи пропускается.
type Course struct {
	ID       int        // Уникальный идентификатор курса
	Level    int        // Уровень сложности
	Type     CourseType // Тип курса (может быть пустым)
	Support  Support    // Дисциплина (может быть пустой)
	Price    float64    // Стоимость курса
	TimeSlot int        // Номер временного слота
}

// DummyCourse используется для приёма данных курса из JSON-запроса.
type DummyCourse struct {
	Level    int     `json:"level" validate:"required,min=1"` // Уровень сложности (>=1)
	Type     string  `json:"type_course,omitempty"`           // Тип курса (опционально)
	Support  string  `json:"support,omitempty"`               // Дисциплина (опционально)
	Price    float64 `json:"price" validate:"required,gt=0"`  // Стоимость (>0)
	TimeSlot int     `json:"time_slot,omitempty"`             // Временной слот (опционально)
}
