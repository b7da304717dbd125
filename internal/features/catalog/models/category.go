package models

// Category is one of the fixed classification buckets. The set never
// changes at runtime, so it lives here rather than in the store.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var Categories = []Category{
	{1, "🌿 Miscellaneous"},
	{2, "👥 Social"},
	{3, "🙋‍♂️ Promoting"},
	{4, "🛍 Shopping"},
	{5, "😂 Humor"},
	{6, "🎮 Gaming"},
	{7, "🏋️‍♂️ HTML5 Games"},
	{8, "🤖 Bot creating"},
	{9, "⚒ Sticker pack creation"},
	{10, "🧸 Stickers & Gif's"},
	{11, "🍟 Video"},
	{12, "📸 Photography"},
	{13, "🎧 Music"},
	{14, "⚽ Sports"},
	{15, "☔️ Weather"},
	{16, "📰 News"},
	{17, "✈️ Places & Traveling"},
	{18, "📞 Android & Tech News"},
	{19, "📲 Apps & software"},
	{20, "📚 Books & Magazines"},
	{21, "📓 Translation and dictionaries"},
	{22, "💳 Public ID's"},
	{23, "📝 Text Formatting"},
	{24, "📦 Multiuse"},
	{25, "🛠️ Group & channel tools"},
	{26, "🍃 Inline Web Search"},
	{27, "⏰ Organization and reminders"},
	{28, "⚙️ Tools"},
}

// DefaultCategoryID is used when a submission doesn't name a category.
const DefaultCategoryID = 1

func ValidCategoryID(id int) bool {
	return id >= 1 && id <= len(Categories)
}

// CategoryName returns the display name or "" for unknown ids.
func CategoryName(id int) string {
	if !ValidCategoryID(id) {
		return ""
	}
	return Categories[id-1].Name
}
