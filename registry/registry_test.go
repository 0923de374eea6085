package registry

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicebus/hermes/proto"
)

func TestDefault_BuildsFullVocabulary(t *testing.T) {
	reg := Default()

	assert.NotEmpty(t, reg.Kinds())

	filters := reg.Filters()
	seen := make(map[string]struct{}, len(filters))
	for _, f := range filters {
		_, dup := seen[f]
		assert.False(t, dup, "duplicate filter %q", f)
		seen[f] = struct{}{}
	}
}

func TestNew_RejectsDuplicateKind(t *testing.T) {
	_, err := New([]Entry{
		{Kind: proto.KindTtsSay, Template: "hermes/tts/say", New: func() proto.Message { return &proto.TtsSay{} }},
		{Kind: proto.KindTtsSay, Template: "hermes/tts/say2", New: func() proto.Message { return &proto.TtsSay{} }},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNew_RejectsAmbiguousTemplates(t *testing.T) {
	// Both templates match "hermes/x/anything" and neither is more specific.
	_, err := New([]Entry{
		{Kind: proto.KindTtsSay, Template: "hermes/x/+a", New: func() proto.Message { return &proto.TtsSay{} }},
		{Kind: proto.KindTtsSayFinished, Template: "hermes/x/+b", New: func() proto.Message { return &proto.TtsSayFinished{} }},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestRegistry_RoundTrip_PathCarriedField(t *testing.T) {
	reg := Default()

	in := &proto.HotwordDetected{
		WakewordID:         "porcupine",
		ModelID:            "porcupine_linux.ppn",
		ModelVersion:       "1.9.0",
		ModelType:          "universal",
		CurrentSensitivity: 0.5,
		SiteID:             "kitchen",
	}

	topic, payload, err := reg.Encode(in)
	require.NoError(t, err)
	assert.Equal(t, "hermes/hotword/porcupine/detected", topic)

	// The path-carried id must not leak into the payload.
	var doc map[string]any
	require.NoError(t, json.Unmarshal(payload, &doc))
	assert.NotContains(t, doc, "wakewordId")

	out, err := reg.Decode(topic, payload)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRegistry_RoundTrip_Intent(t *testing.T) {
	reg := Default()

	in := &proto.NluIntent{
		Input:     "what time is it",
		Intent:    proto.Intent{IntentName: "GetTime", ConfidenceScore: 0.92},
		SiteID:    "kitchen",
		SessionID: "abc123",
		Slots: []proto.Slot{
			{
				Entity:   "location",
				SlotName: "room",
				RawValue: "kitchen",
				Value:    map[string]any{"kind": "Custom", "value": "kitchen"},
			},
		},
	}

	topic, payload, err := reg.Encode(in)
	require.NoError(t, err)
	assert.Equal(t, "hermes/intent/GetTime", topic)

	out, err := reg.Decode(topic, payload)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRegistry_Decode_IntentPayloadAuthoritative(t *testing.T) {
	reg := Default()

	// A peer published on a topic segment that disagrees with the payload.
	payload := []byte(`{"input":"turn on the light","intent":{"intentName":"LightOn","confidenceScore":1}}`)
	out, err := reg.Decode("hermes/intent/SomethingElse", payload)
	require.NoError(t, err)

	intent := out.(*proto.NluIntent)
	assert.Equal(t, "LightOn", intent.Intent.IntentName)
}

func TestRegistry_RoundTrip_Binary(t *testing.T) {
	reg := Default()

	wav := []byte{'R', 'I', 'F', 'F', 0x24, 0, 0, 0, 'W', 'A', 'V', 'E'}
	in := &proto.AudioPlayBytes{SiteID: "kitchen", RequestID: "req-42"}
	in.SetPayload(wav)

	topic, payload, err := reg.Encode(in)
	require.NoError(t, err)
	assert.Equal(t, "hermes/audioServer/kitchen/playBytes/req-42", topic)
	assert.Equal(t, wav, payload)

	out, err := reg.Decode(topic, payload)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRegistry_Decode_MostSpecificTemplateWins(t *testing.T) {
	reg := Default()

	// This topic also fits the audioSessionFrame shape, but the playBytes
	// literal makes that template the more specific match.
	out, err := reg.Decode("hermes/audioServer/kitchen/playBytes/req-1", []byte{1, 2, 3})
	require.NoError(t, err)

	play, ok := out.(*proto.AudioPlayBytes)
	require.True(t, ok)
	assert.Equal(t, "kitchen", play.SiteID)
	assert.Equal(t, "req-1", play.RequestID)

	out, err = reg.Decode("hermes/audioServer/kitchen/abc123/audioSessionFrame", []byte{1, 2, 3})
	require.NoError(t, err)

	frame, ok := out.(*proto.AudioSessionFrame)
	require.True(t, ok)
	assert.Equal(t, "abc123", frame.SessionID)
}

func TestRegistry_Decode_UnknownTopic(t *testing.T) {
	reg := Default()

	_, err := reg.Decode("hermes/unknown/thing", []byte(`{}`))
	require.Error(t, err)

	var unknown *UnknownTopicError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "hermes/unknown/thing", unknown.Topic)
}

func TestRegistry_Decode_MalformedPayload(t *testing.T) {
	reg := Default()

	_, err := reg.Decode("hermes/tts/say", []byte(`{"text": `))
	require.Error(t, err)

	var malformed *MalformedPayloadError
	assert.ErrorAs(t, err, &malformed)
}

func TestRegistry_Decode_MissingRequiredField(t *testing.T) {
	reg := Default()

	_, err := reg.Decode("hermes/asr/textCaptured", []byte(`{"likelihood":0.9,"seconds":1.5}`))
	require.Error(t, err)

	var violation *SchemaViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, proto.KindAsrTextCaptured, violation.Kind)
	assert.Equal(t, "text", violation.Field)
}

func TestRegistry_Decode_WrongFieldType(t *testing.T) {
	reg := Default()

	payload := []byte(`{"modelId":"m","modelVersion":"1","modelType":"universal","currentSensitivity":"high"}`)
	_, err := reg.Decode("hermes/hotword/porcupine/detected", payload)
	require.Error(t, err)

	var violation *SchemaViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "currentSensitivity", violation.Field)
}

func TestRegistry_Decode_ExtraFieldsTolerated(t *testing.T) {
	reg := Default()

	payload := []byte(`{"text":"hello","futureField":42}`)
	out, err := reg.Decode("hermes/tts/say", payload)
	require.NoError(t, err)
	assert.Equal(t, "hello", out.(*proto.TtsSay).Text)
}

func TestRegistry_Encode_UnknownKind(t *testing.T) {
	reg, err := New([]Entry{
		{Kind: proto.KindTtsSay, Template: "hermes/tts/say", New: func() proto.Message { return &proto.TtsSay{} }},
	})
	require.NoError(t, err)

	_, _, err = reg.Encode(&proto.TtsSayFinished{})
	require.Error(t, err)

	var unknown *UnknownKindError
	assert.True(t, errors.As(err, &unknown))
}

func TestRegistry_RoundTrip_OptionalFieldsOmitted(t *testing.T) {
	reg := Default()

	in := &proto.TtsSay{Text: "hello"}
	topic, payload, err := reg.Encode(in)
	require.NoError(t, err)
	assert.Equal(t, "hermes/tts/say", topic)
	assert.JSONEq(t, `{"text":"hello"}`, string(payload))

	out, err := reg.Decode(topic, payload)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
