package topic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Errors(t *testing.T) {
	cases := []struct {
		name     string
		template string
	}{
		{"empty", ""},
		{"wildcard not last", "hermes/#/detected"},
		{"nameless placeholder", "hermes/+/detected"},
		{"duplicate placeholder", "hermes/+siteId/+siteId"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.template)
			require.Error(t, err)

			var terr *TemplateError
			assert.ErrorAs(t, err, &terr)
		})
	}
}

func TestTemplate_Match(t *testing.T) {
	tmpl := MustCompile("hermes/hotword/+wakewordId/detected")

	values, ok := tmpl.Match("hermes/hotword/porcupine/detected")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"wakewordId": "porcupine"}, values)

	_, ok = tmpl.Match("hermes/hotword/porcupine/loaded")
	assert.False(t, ok)

	_, ok = tmpl.Match("hermes/hotword/detected")
	assert.False(t, ok, "segment count must match exactly")

	_, ok = tmpl.Match("hermes/hotword/a/b/detected")
	assert.False(t, ok, "a placeholder spans exactly one segment")
}

func TestTemplate_Match_Wildcard(t *testing.T) {
	tmpl := MustCompile("hermes/audioServer/+siteId/#")

	values, ok := tmpl.Match("hermes/audioServer/kitchen/playBytes/req-1")
	require.True(t, ok)
	assert.Equal(t, "kitchen", values["siteId"])

	// The wildcard consumes trailing segments without binding them.
	assert.Len(t, values, 1)

	// Zero trailing segments still match.
	values, ok = tmpl.Match("hermes/audioServer/kitchen")
	require.True(t, ok)
	assert.Equal(t, "kitchen", values["siteId"])

	_, ok = tmpl.Match("hermes/audioServer")
	assert.False(t, ok)
}

func TestTemplate_Render(t *testing.T) {
	tmpl := MustCompile("hermes/hotword/+wakewordId/detected")

	topic, err := tmpl.Render(map[string]string{"wakewordId": "porcupine"})
	require.NoError(t, err)
	assert.Equal(t, "hermes/hotword/porcupine/detected", topic)
}

func TestTemplate_Render_MissingValue(t *testing.T) {
	tmpl := MustCompile("hermes/hotword/+wakewordId/detected")

	_, err := tmpl.Render(map[string]string{})
	require.Error(t, err)

	var merr *MissingPlaceholderError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "wakewordId", merr.Name)
}

func TestTemplate_Render_ValueWithSeparator(t *testing.T) {
	tmpl := MustCompile("hermes/hotword/+wakewordId/detected")

	_, err := tmpl.Render(map[string]string{"wakewordId": "a/b"})
	require.Error(t, err)

	var verr *InvalidValueError
	assert.ErrorAs(t, err, &verr)
}

func TestTemplate_Render_WildcardRejected(t *testing.T) {
	tmpl := MustCompile("hermes/audioServer/+siteId/#")

	_, err := tmpl.Render(map[string]string{"siteId": "kitchen"})
	require.Error(t, err)
}

func TestTemplate_Filter(t *testing.T) {
	assert.Equal(t, "hermes/hotword/+/detected",
		MustCompile("hermes/hotword/+wakewordId/detected").Filter())
	assert.Equal(t, "hermes/tts/say",
		MustCompile("hermes/tts/say").Filter())
	assert.Equal(t, "hermes/audioServer/+/#",
		MustCompile("hermes/audioServer/+siteId/#").Filter())
}

func TestCompare(t *testing.T) {
	playBytes := MustCompile("hermes/audioServer/+siteId/playBytes/+requestId")
	sessionFrame := MustCompile("hermes/audioServer/+siteId/+sessionId/audioSessionFrame")

	// A literal earlier in the topic beats a placeholder, so playBytes wins
	// even though both templates carry two placeholders.
	assert.Negative(t, Compare(playBytes, sessionFrame))
	assert.Positive(t, Compare(sessionFrame, playBytes))

	literal := MustCompile("hermes/tts/say")
	assert.Zero(t, Compare(literal, literal))

	wild := MustCompile("hermes/tts/#")
	assert.Negative(t, Compare(literal, wild))
}

func TestTemplate_Overlaps(t *testing.T) {
	playBytes := MustCompile("hermes/audioServer/+siteId/playBytes/+requestId")
	sessionFrame := MustCompile("hermes/audioServer/+siteId/+sessionId/audioSessionFrame")
	assert.True(t, playBytes.Overlaps(sessionFrame))

	say := MustCompile("hermes/tts/say")
	finished := MustCompile("hermes/tts/sayFinished")
	assert.False(t, say.Overlaps(finished))

	wild := MustCompile("hermes/tts/#")
	assert.True(t, wild.Overlaps(say))
	assert.True(t, say.Overlaps(wild))

	assert.False(t, MustCompile("hermes/tts/say").Overlaps(MustCompile("hermes/tts/say/more")))
}
