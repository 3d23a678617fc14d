package domain

// ComputePrice суммирует цены выбранных услуг по общему прайс-листу
// Неизвестная услуга даёт вклад 0
func (s *Settings) ComputePrice(services []string) float64 {
	if s == nil || len(s.Prices) == 0 {
		return 0
	}

	total := 0.0
	for _, name := range services {
		total += s.Prices[name]
	}
	return total
}

// ComputeCatPrice вычисляет стоимость услуг для кошки
//
// Купание тарифицируется по весовым порогам: берётся первый порог с
// max >= weightKg (пороги упорядочены по возрастанию), цена зависит от
// длины шерсти. Вес, превышающий все пороги, разрешается через последний
// (catch-all) порог - это никогда не ошибка
//
// Остальные услуги: кошачья наценка из AddOns, иначе общий прайс-лист, иначе 0
func (s *Settings) ComputeCatPrice(services []string, weightKg float64, isLongHair bool) float64 {
	if s == nil {
		return 0
	}

	total := 0.0

	for _, name := range services {
		if name == BathingService {
			total += s.catBathingPrice(weightKg, isLongHair)
			continue
		}
		if addOn, ok := s.CatPricing.AddOns[name]; ok {
			total += addOn
			continue
		}
		total += s.Prices[name]
	}

	return total
}

// catBathingPrice подбирает цену купания по весовому порогу
func (s *Settings) catBathingPrice(weightKg float64, isLongHair bool) float64 {
	tiers := s.CatPricing.Tiers
	if len(tiers) == 0 {
		// Порогов нет - откатываемся к общему прайс-листу
		return s.Prices[BathingService]
	}

	tier := tiers[len(tiers)-1] // catch-all
	for _, t := range tiers {
		if weightKg <= t.MaxKg {
			tier = t
			break
		}
	}

	if isLongHair {
		return tier.LongHairPrice
	}
	return tier.ShortHairPrice
}
