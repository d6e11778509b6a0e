package fittracker

import "fmt"

// Locale selects the language of rendered messages
type Locale string

const (
	LocaleRU Locale = "ru"
	LocaleEN Locale = "en"
)

// DefaultLocale is used when no locale is configured
const DefaultLocale = LocaleRU

type catalog struct {
	summary    string
	unknownTag string
}

var catalogs = map[Locale]catalog{
	LocaleRU: {
		summary: "Тип тренировки: %s; " +
			"Длительность: %.3f ч.; " +
			"Дистанция: %.3f км; " +
			"Ср. скорость: %.3f км/ч; " +
			"Потрачено ккал: %.3f.",
		unknownTag: "неизвестный тип тренировки",
	},
	LocaleEN: {
		summary: "Workout type: %s; " +
			"Duration: %.3f h; " +
			"Distance: %.3f km; " +
			"Avg. speed: %.3f km/h; " +
			"Calories burned: %.3f.",
		unknownTag: "no such workout kind",
	},
}

// IsValid returns true if messages can be rendered in the locale
func (l Locale) IsValid() bool {
	_, ok := catalogs[l]
	return ok
}

func (l Locale) catalog() catalog {
	if c, ok := catalogs[l]; ok {
		return c
	}
	return catalogs[DefaultLocale]
}

// ShowTrainingInfo computes distance, speed and calories, in that order,
// and packs them into an InfoMessage
func ShowTrainingInfo(w Workout) InfoMessage {
	distance := w.Distance()
	speed := w.MeanSpeed()
	calories := w.SpentCalories()

	return InfoMessage{
		TrainingType: w.Kind(),
		Duration:     w.Duration(),
		Distance:     distance,
		Speed:        speed,
		Calories:     calories,
	}
}

// Message renders the summary line in the default locale
func (m InfoMessage) Message() string {
	return m.MessageIn(DefaultLocale)
}

// MessageIn renders the summary line in the given locale. Unknown locales
// fall back to DefaultLocale.
func (m InfoMessage) MessageIn(locale Locale) string {
	return fmt.Sprintf(locale.catalog().summary,
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}
