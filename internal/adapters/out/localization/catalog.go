// Package localization renders stable message keys into user-facing
// text. The catalog is compiled in: message sets change with releases,
// not at runtime.
package localization

// Catalog implements LocalizationService over an in-memory message table.
type Catalog struct {
	messages map[string]map[string]string
	fallback string
}

// NewCatalog creates a catalog with the built-in translations.
// fallbackLanguage is used when the requested language has no entry.
func NewCatalog(fallbackLanguage string) *Catalog {
	return &Catalog{
		messages: builtinMessages(),
		fallback: fallbackLanguage,
	}
}

// Localize returns the translation of key for the language. Order of
// preference: requested language, fallback language, the key itself.
func (c *Catalog) Localize(key, language string) string {
	if text, ok := c.messages[language][key]; ok {
		return text
	}
	if text, ok := c.messages[c.fallback][key]; ok {
		return text
	}
	return key
}

func builtinMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"tr": {
			"rules.not_active":              "Bu kampanya şu anda aktif değil.",
			"rules.outside_date_range":      "Kampanya tarihi geçerli değil.",
			"rules.outside_time_window":     "Kampanya bu saatlerde geçerli değil.",
			"rules.not_first_order":         "Bu kampanya yalnızca ilk sipariş için geçerli.",
			"rules.min_cart_not_met":        "Sepet tutarı kampanya için yetersiz.",
			"rules.city_not_covered":        "Kampanya bu şehirde geçerli değil.",
			"rules.vendor_type_not_covered": "Kampanya bu işletme türünde geçerli değil.",
			"rules.no_applicable_items":     "Sepette kampanyaya dahil ürün yok.",
			"rules.usage_limit_reached":     "Kampanya kullanım limitine ulaştınız.",

			"order.assigned":         "Siparişiniz bir kuryeye atandı.",
			"order.accepted":         "Kurye siparişinizi kabul etti.",
			"order.rejected":         "Kurye ataması reddedildi, yeni kurye aranıyor.",
			"order.picked_up":        "Siparişiniz kurye tarafından teslim alındı.",
			"order.out_for_delivery": "Siparişiniz yola çıktı.",
			"order.delivered":        "Siparişiniz teslim edildi. Afiyet olsun!",
			"order.cancelled":        "Siparişiniz iptal edildi.",
		},
		"en": {
			"rules.not_active":              "This campaign is not active right now.",
			"rules.outside_date_range":      "The campaign dates do not apply.",
			"rules.outside_time_window":     "The campaign is not valid at this hour.",
			"rules.not_first_order":         "This campaign is for first orders only.",
			"rules.min_cart_not_met":        "Your cart does not meet the campaign minimum.",
			"rules.city_not_covered":        "The campaign is not available in this city.",
			"rules.vendor_type_not_covered": "The campaign does not cover this vendor type.",
			"rules.no_applicable_items":     "No items in your cart qualify for the campaign.",
			"rules.usage_limit_reached":     "You have reached the campaign usage limit.",

			"order.assigned":         "Your order was assigned to a courier.",
			"order.accepted":         "The courier accepted your order.",
			"order.rejected":         "The courier declined, finding a new one.",
			"order.picked_up":        "The courier picked up your order.",
			"order.out_for_delivery": "Your order is on its way.",
			"order.delivered":        "Your order was delivered. Enjoy!",
			"order.cancelled":        "Your order was cancelled.",
		},
	}
}
