package lang

import "strings"

// Command is an explicit "reply in X" directive parsed out of a user
// message, e.g. "jibu kwa kiswahili" or just "arabic".
type Command struct {
	Acknowledgement string
	Code            Code
}

type commandRule struct {
	triggers []string
	// native-script triggers are matched against the raw text, not the
	// lowercased form, since ToLower is meaningless for those scripts
	nativeTriggers  []string
	acknowledgement string
	code            Code
}

// Rule order encodes priority: a message containing triggers for more
// than one language resolves to the first rule that matches.
var commandRules = []commandRule{
	{
		triggers:        []string{"kiswahili", "swahili"},
		acknowledgement: "Sawa—nitajibu kwa Kiswahili kuanzia sasa.",
		code:            CodeSwahili,
	},
	{
		triggers:        []string{"amharic"},
		nativeTriggers:  []string{"አማርኛ"},
		acknowledgement: "እሺ — ከአሁን በኋላ በአማርኛ እመልሳለሁ።",
		code:            CodeAmharic,
	},
	{
		triggers:        []string{"somali", "soomaali"},
		acknowledgement: "Haye—laga bilaabo hadda waxaan ku jawaabi doonaa Af-Soomaali.",
		code:            CodeSomali,
	},
	{
		triggers:        []string{"arabic"},
		nativeTriggers:  []string{"العربية", "عربي"},
		acknowledgement: "حسنًا — سأجيب بالعربية من الآن فصاعدًا.",
		code:            CodeArabic,
	},
	{
		triggers:        []string{"english"},
		acknowledgement: "Okay—I'll reply in English from now on.",
		code:            CodeEnglish,
	},
}

// ParseCommand reports whether the message is a language switch
// directive. On a match the caller should persist the code as the
// session's sticky preference and skip routing entirely for this turn.
func ParseCommand(text string) (*Command, bool) {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return nil, false
	}
	for _, rule := range commandRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lowered, trigger) {
				return &Command{Acknowledgement: rule.acknowledgement, Code: rule.code}, true
			}
		}
		for _, trigger := range rule.nativeTriggers {
			if strings.Contains(text, trigger) {
				return &Command{Acknowledgement: rule.acknowledgement, Code: rule.code}, true
			}
		}
	}
	return nil, false
}
