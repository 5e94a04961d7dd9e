package tui

// optionItem is one entry in the language or category picker. An
// empty code on a category means "all categories".
type optionItem struct {
	code  string
	label string
}

func (i optionItem) Title() string { return i.label }

func (i optionItem) Description() string {
	if i.code == "" {
		return "no filter"
	}
	return i.code
}

func (i optionItem) FilterValue() string { return i.label + " " + i.code }

// Languages the service indexes well. The picker is a convenience;
// the config default_language can be any code the service accepts.
var languageOptions = []optionItem{
	{"en", "English"},
	{"es", "Spanish"},
	{"fr", "French"},
	{"de", "German"},
	{"it", "Italian"},
	{"pt", "Portuguese"},
	{"nl", "Dutch"},
	{"ru", "Russian"},
	{"ar", "Arabic"},
	{"zh", "Chinese"},
	{"ja", "Japanese"},
}

// Categories as defined by the service.
var categoryOptions = []optionItem{
	{"", "All categories"},
	{"general", "General"},
	{"business", "Business"},
	{"entertainment", "Entertainment"},
	{"food", "Food"},
	{"health", "Health"},
	{"politics", "Politics"},
	{"science", "Science"},
	{"sports", "Sports"},
	{"tech", "Tech"},
	{"travel", "Travel"},
}
