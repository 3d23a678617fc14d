package domain

// ComputeDuration вычисляет суммарную длительность выбранных услуг в минутах
//
// Правила:
//   - пустой список услуг -> DefaultServiceDurationMinutes
//   - точное совпадение комбо-ключа (отсортированные имена через запятую)
//     побеждает безусловно - это переопределение, а не сумма
//   - иначе суммируются индивидуальные длительности; неизвестная услуга
//     даёт вклад 0
//   - полностью отсутствующая таблица длительностей -> DefaultServiceDurationMinutes
//     (документированный fallback для повреждённой конфигурации)
//
// Функция детерминирована, без побочных эффектов; используется и для живой
// подсказки в форме, и для сохраняемой длительности при создании записи
func (s *Settings) ComputeDuration(services []string) int {
	if len(services) == 0 {
		return DefaultServiceDurationMinutes
	}

	if s == nil || len(s.Durations) == 0 {
		return DefaultServiceDurationMinutes
	}

	// Комбо-переопределение побеждает целиком
	if combo, ok := s.Durations[ComboKey(services)]; ok {
		return combo
	}

	total := 0
	for _, name := range services {
		total += s.Durations[name]
	}
	return total
}
