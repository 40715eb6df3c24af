package preset

// BuiltinID is the id of the compiled-in preset used when no configuration
// exists yet.
const BuiltinID = "countries"

// Builtin returns the default preset: a small country catalog projected
// into three boxes. It is regenerated on every call so callers can mutate
// their copy freely.
func Builtin() Definition {
	return Definition{
		ID:          BuiltinID,
		Name:        "Countries",
		Description: "Pick countries and watch each box mirror the selection.",
		Choices: []Choice{
			{Code: "CH", Name: "Switzerland"},
			{Code: "JP", Name: "Japan"},
			{Code: "GER", Name: "Germany"},
			{Code: "US", Name: "United States"},
			{Code: "BR", Name: "Brazil"},
			{Code: "IN", Name: "India"},
			{Code: "FR", Name: "France"},
			{Code: "AUS", Name: "Australia"},
		},
		Slots: []SlotSpec{
			{ID: "box-1", Subtitle: "Box 1", Accent: "#5B8DEF"},
			{ID: "box-2", Subtitle: "Box 2", Accent: "#4CAF50"},
			{ID: "box-3", Subtitle: "Box 3", Accent: "#F7B801"},
		},
	}
}
