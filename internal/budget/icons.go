package budget

// DefaultIcon is used for categories without a preset icon.
const DefaultIcon = "fas fa-envelope"

// ReceiptDescription is used for scanned receipts without a recognizable store name.
const ReceiptDescription = "Kassenzettel"

// Preset is a category offered for selection together with its icon.
type Preset struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var presets = []Preset{
	{"Miete", "fas fa-home"},
	{"Lebensmittel", "fas fa-apple-alt"},
	{"Transport", "fas fa-car"},
	{"Unterhaltung", "fas fa-film"},
	{"Rechnungen", "fas fa-file-invoice-dollar"},
	{"Ersparnisse", "fas fa-piggy-bank"},
	{"Sonstiges", "fas fa-box"},
}

// Presets returns the preset categories in display order.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// IconFor returns the icon for a category name.
func IconFor(name string) string {
	for _, p := range presets {
		if p.Name == name {
			return p.Icon
		}
	}

	return DefaultIcon
}
