package lang

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantCode Code
		wantOK   bool
	}{
		{name: "swahili trigger", text: "jibu kwa kiswahili", wantCode: CodeSwahili, wantOK: true},
		{name: "swahili english word", text: "please use Swahili", wantCode: CodeSwahili, wantOK: true},
		{name: "amharic latin", text: "switch to amharic", wantCode: CodeAmharic, wantOK: true},
		{name: "amharic native", text: "በአማርኛ መልስልኝ", wantCode: CodeAmharic, wantOK: true},
		{name: "somali", text: "Af-Soomaali fadlan", wantCode: CodeSomali, wantOK: true},
		{name: "arabic latin", text: "reply in ARABIC", wantCode: CodeArabic, wantOK: true},
		{name: "arabic native", text: "تكلم العربية", wantCode: CodeArabic, wantOK: true},
		{name: "english", text: "english please", wantCode: CodeEnglish, wantOK: true},
		{name: "not a command", text: "my card was swallowed", wantOK: false},
		{name: "blank", text: "   ", wantOK: false},
		// rule order decides when two languages are named in one message
		{name: "swahili beats english", text: "english or kiswahili", wantCode: CodeSwahili, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := ParseCommand(tt.text)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			require.Equal(t, tt.wantCode, cmd.Code)
			require.NotEmpty(t, cmd.Acknowledgement)
		})
	}
}

func TestParseCommandAcknowledgementMatchesLanguage(t *testing.T) {
	cmd, ok := ParseCommand("kiswahili")
	require.True(t, ok)
	require.Equal(t, "Sawa—nitajibu kwa Kiswahili kuanzia sasa.", cmd.Acknowledgement)

	cmd, ok = ParseCommand("english")
	require.True(t, ok)
	require.Equal(t, "Okay—I'll reply in English from now on.", cmd.Acknowledgement)
}
