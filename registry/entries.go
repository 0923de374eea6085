package registry

import (
	"github.com/voicebus/hermes/proto"
)

func siteField() Field    { return Field{Name: "siteId", Type: FieldString} }
func sessionField() Field { return Field{Name: "sessionId", Type: FieldString} }
func idField() Field      { return Field{Name: "id", Type: FieldString} }

func errorFields() []Field {
	return []Field{
		{Name: "error", Type: FieldString, Required: true},
		{Name: "context", Type: FieldString},
		siteField(),
		sessionField(),
	}
}

var toggleReasons = []string{"", "dialogueSession", "playAudio", "ttsSay"}

// DefaultEntries returns the closed protocol vocabulary: one entry per
// message variant with its exact topic template and payload field list.
func DefaultEntries() []Entry {
	return []Entry{
		// Wake word
		{
			Kind:     proto.KindHotwordToggleOn,
			Template: "hermes/hotword/toggleOn",
			Fields:   []Field{siteField()},
			New:      func() proto.Message { return &proto.HotwordToggleOn{} },
		},
		{
			Kind:     proto.KindHotwordToggleOff,
			Template: "hermes/hotword/toggleOff",
			Fields:   []Field{siteField(), sessionField()},
			New:      func() proto.Message { return &proto.HotwordToggleOff{} },
		},
		{
			Kind:     proto.KindHotwordDetected,
			Template: "hermes/hotword/+wakewordId/detected",
			Fields: []Field{
				{Name: "modelId", Type: FieldString, Required: true},
				{Name: "modelVersion", Type: FieldString, Required: true},
				{Name: "modelType", Type: FieldString, Required: true},
				{Name: "currentSensitivity", Type: FieldNumber, Required: true},
				siteField(),
			},
			New: func() proto.Message { return &proto.HotwordDetected{} },
			FromTopic: func(msg proto.Message, values map[string]string) {
				msg.(*proto.HotwordDetected).WakewordID = values["wakewordId"]
			},
			TopicValues: func(msg proto.Message) map[string]string {
				return map[string]string{"wakewordId": msg.(*proto.HotwordDetected).WakewordID}
			},
		},

		// ASR
		{
			Kind:     proto.KindAsrToggleOn,
			Template: "hermes/asr/toggleOn",
			Fields:   []Field{siteField(), {Name: "reason", Type: FieldString, Enum: toggleReasons}},
			New:      func() proto.Message { return &proto.AsrToggleOn{} },
		},
		{
			Kind:     proto.KindAsrToggleOff,
			Template: "hermes/asr/toggleOff",
			Fields:   []Field{siteField(), {Name: "reason", Type: FieldString, Enum: toggleReasons}},
			New:      func() proto.Message { return &proto.AsrToggleOff{} },
		},
		{
			Kind:     proto.KindAsrStartListening,
			Template: "hermes/asr/startListening",
			Fields: []Field{
				siteField(),
				sessionField(),
				{Name: "lang", Type: FieldString},
				{Name: "stopOnSilence", Type: FieldBoolean},
				{Name: "sendAudioCaptured", Type: FieldBoolean},
				{Name: "wakewordId", Type: FieldString},
				{Name: "intentFilter", Type: FieldArray},
			},
			New: func() proto.Message { return &proto.AsrStartListening{} },
		},
		{
			Kind:     proto.KindAsrStopListening,
			Template: "hermes/asr/stopListening",
			Fields:   []Field{siteField(), sessionField()},
			New:      func() proto.Message { return &proto.AsrStopListening{} },
		},
		{
			Kind:     proto.KindAsrTextCaptured,
			Template: "hermes/asr/textCaptured",
			Fields: []Field{
				{Name: "text", Type: FieldString, Required: true},
				{Name: "likelihood", Type: FieldNumber, Required: true},
				{Name: "seconds", Type: FieldNumber, Required: true},
				siteField(),
				sessionField(),
				{Name: "wakewordId", Type: FieldString},
				{Name: "asrTokens", Type: FieldArray},
				{Name: "lang", Type: FieldString},
			},
			New: func() proto.Message { return &proto.AsrTextCaptured{} },
		},
		{
			Kind:     proto.KindAsrError,
			Template: "hermes/error/asr",
			Fields:   errorFields(),
			New:      func() proto.Message { return &proto.AsrError{} },
		},
		{
			Kind:     proto.KindAsrTrain,
			Template: "rhasspy/asr/+siteId/train",
			Fields: []Field{
				{Name: "graphPath", Type: FieldString, Required: true},
				idField(),
				{Name: "graphFormat", Type: FieldString},
				{Name: "sentences", Type: FieldObject},
				{Name: "slots", Type: FieldObject},
			},
			New: func() proto.Message { return &proto.AsrTrain{} },
			FromTopic: func(msg proto.Message, values map[string]string) {
				msg.(*proto.AsrTrain).SiteID = values["siteId"]
			},
			TopicValues: func(msg proto.Message) map[string]string {
				return map[string]string{"siteId": msg.(*proto.AsrTrain).SiteID}
			},
		},
		{
			Kind:     proto.KindAsrTrainSuccess,
			Template: "rhasspy/asr/+siteId/trainSuccess",
			Fields:   []Field{idField()},
			New:      func() proto.Message { return &proto.AsrTrainSuccess{} },
			FromTopic: func(msg proto.Message, values map[string]string) {
				msg.(*proto.AsrTrainSuccess).SiteID = values["siteId"]
			},
			TopicValues: func(msg proto.Message) map[string]string {
				return map[string]string{"siteId": msg.(*proto.AsrTrainSuccess).SiteID}
			},
		},
		{
			Kind:     proto.KindAsrAudioCaptured,
			Template: "rhasspy/asr/+siteId/+sessionId/audioCaptured",
			Binary:   true,
			New:      func() proto.Message { return &proto.AsrAudioCaptured{} },
			FromTopic: func(msg proto.Message, values map[string]string) {
				m := msg.(*proto.AsrAudioCaptured)
				m.SiteID = values["siteId"]
				m.SessionID = values["sessionId"]
			},
			TopicValues: func(msg proto.Message) map[string]string {
				m := msg.(*proto.AsrAudioCaptured)
				return map[string]string{"siteId": m.SiteID, "sessionId": m.SessionID}
			},
		},

		// NLU
		{
			Kind:     proto.KindNluQuery,
			Template: "hermes/nlu/query",
			Fields: []Field{
				{Name: "input", Type: FieldString, Required: true},
				{Name: "intentFilter", Type: FieldArray},
				idField(),
				siteField(),
				sessionField(),
			},
			New: func() proto.Message { return &proto.NluQuery{} },
		},
		{
			Kind:     proto.KindNluIntent,
			Template: "hermes/intent/+intentName",
			Fields: []Field{
				{Name: "input", Type: FieldString, Required: true},
				{Name: "intent", Type: FieldObject, Required: true},
				{Name: "slots", Type: FieldArray},
				idField(),
				siteField(),
				sessionField(),
				{Name: "customData", Type: FieldString},
			},
			New: func() proto.Message { return &proto.NluIntent{} },
			// The payload's intent object is authoritative for the intent
			// name; the topic segment is rendered from it on encode.
			TopicValues: func(msg proto.Message) map[string]string {
				return map[string]string{"intentName": msg.(*proto.NluIntent).Intent.IntentName}
			},
		},
		{
			Kind:     proto.KindNluIntentNotRecognized,
			Template: "hermes/nlu/intentNotRecognized",
			Fields: []Field{
				{Name: "input", Type: FieldString, Required: true},
				idField(),
				siteField(),
				sessionField(),
			},
			New: func() proto.Message { return &proto.NluIntentNotRecognized{} },
		},
		{
			Kind:     proto.KindNluError,
			Template: "hermes/error/nlu",
			Fields:   errorFields(),
			New:      func() proto.Message { return &proto.NluError{} },
		},

		// TTS
		{
			Kind:     proto.KindTtsSay,
			Template: "hermes/tts/say",
			Fields: []Field{
				{Name: "text", Type: FieldString, Required: true},
				{Name: "lang", Type: FieldString},
				idField(),
				siteField(),
				sessionField(),
			},
			New: func() proto.Message { return &proto.TtsSay{} },
		},
		{
			Kind:     proto.KindTtsSayFinished,
			Template: "hermes/tts/sayFinished",
			Fields:   []Field{idField(), sessionField()},
			New:      func() proto.Message { return &proto.TtsSayFinished{} },
		},

		// Dialogue manager
		{
			Kind:     proto.KindDialogueStartSession,
			Template: "hermes/dialogueManager/startSession",
			Fields: []Field{
				{Name: "init", Type: FieldObject, Required: true},
				siteField(),
				{Name: "customData", Type: FieldString},
				{Name: "lang", Type: FieldString},
			},
			New: func() proto.Message { return &proto.DialogueStartSession{} },
		},
		{
			Kind:     proto.KindDialogueSessionQueued,
			Template: "hermes/dialogueManager/sessionQueued",
			Fields: []Field{
				{Name: "sessionId", Type: FieldString, Required: true},
				siteField(),
				{Name: "customData", Type: FieldString},
			},
			New: func() proto.Message { return &proto.DialogueSessionQueued{} },
		},
		{
			Kind:     proto.KindDialogueSessionStarted,
			Template: "hermes/dialogueManager/sessionStarted",
			Fields: []Field{
				{Name: "sessionId", Type: FieldString, Required: true},
				siteField(),
				{Name: "customData", Type: FieldString},
				{Name: "lang", Type: FieldString},
			},
			New: func() proto.Message { return &proto.DialogueSessionStarted{} },
		},
		{
			Kind:     proto.KindDialogueContinueSession,
			Template: "hermes/dialogueManager/continueSession",
			Fields: []Field{
				{Name: "sessionId", Type: FieldString, Required: true},
				siteField(),
				{Name: "customData", Type: FieldString},
				{Name: "text", Type: FieldString},
				{Name: "intentFilter", Type: FieldArray},
				{Name: "sendIntentNotRecognized", Type: FieldBoolean},
				{Name: "slot", Type: FieldString},
				{Name: "lang", Type: FieldString},
			},
			New: func() proto.Message { return &proto.DialogueContinueSession{} },
		},
		{
			Kind:     proto.KindDialogueEndSession,
			Template: "hermes/dialogueManager/endSession",
			Fields: []Field{
				{Name: "sessionId", Type: FieldString, Required: true},
				siteField(),
				{Name: "text", Type: FieldString},
				{Name: "customData", Type: FieldString},
			},
			New: func() proto.Message { return &proto.DialogueEndSession{} },
		},
		{
			Kind:     proto.KindDialogueSessionEnded,
			Template: "hermes/dialogueManager/sessionEnded",
			Fields: []Field{
				{Name: "termination", Type: FieldObject, Required: true},
				{Name: "sessionId", Type: FieldString, Required: true},
				siteField(),
				{Name: "customData", Type: FieldString},
			},
			New: func() proto.Message { return &proto.DialogueSessionEnded{} },
		},
		{
			Kind:     proto.KindDialogueIntentNotRecognized,
			Template: "hermes/dialogueManager/intentNotRecognized",
			Fields: []Field{
				{Name: "sessionId", Type: FieldString, Required: true},
				siteField(),
				{Name: "input", Type: FieldString},
				{Name: "customData", Type: FieldString},
			},
			New: func() proto.Message { return &proto.DialogueIntentNotRecognized{} },
		},
		{
			Kind:     proto.KindDialogueConfigure,
			Template: "hermes/dialogueManager/configure",
			Fields: []Field{
				{Name: "intents", Type: FieldArray, Required: true},
				siteField(),
			},
			New: func() proto.Message { return &proto.DialogueConfigure{} },
		},
		{
			Kind:     proto.KindDialogueError,
			Template: "hermes/error/dialogueManager",
			Fields:   errorFields(),
			New:      func() proto.Message { return &proto.DialogueError{} },
		},

		// Audio server
		{
			Kind:     proto.KindAudioFrame,
			Template: "hermes/audioServer/+siteId/audioFrame",
			Binary:   true,
			New:      func() proto.Message { return &proto.AudioFrame{} },
			FromTopic: func(msg proto.Message, values map[string]string) {
				msg.(*proto.AudioFrame).SiteID = values["siteId"]
			},
			TopicValues: func(msg proto.Message) map[string]string {
				return map[string]string{"siteId": msg.(*proto.AudioFrame).SiteID}
			},
		},
		{
			Kind:     proto.KindAudioSessionFrame,
			Template: "hermes/audioServer/+siteId/+sessionId/audioSessionFrame",
			Binary:   true,
			New:      func() proto.Message { return &proto.AudioSessionFrame{} },
			FromTopic: func(msg proto.Message, values map[string]string) {
				m := msg.(*proto.AudioSessionFrame)
				m.SiteID = values["siteId"]
				m.SessionID = values["sessionId"]
			},
			TopicValues: func(msg proto.Message) map[string]string {
				m := msg.(*proto.AudioSessionFrame)
				return map[string]string{"siteId": m.SiteID, "sessionId": m.SessionID}
			},
		},
		{
			Kind:     proto.KindAudioPlayBytes,
			Template: "hermes/audioServer/+siteId/playBytes/+requestId",
			Binary:   true,
			New:      func() proto.Message { return &proto.AudioPlayBytes{} },
			FromTopic: func(msg proto.Message, values map[string]string) {
				m := msg.(*proto.AudioPlayBytes)
				m.SiteID = values["siteId"]
				m.RequestID = values["requestId"]
			},
			TopicValues: func(msg proto.Message) map[string]string {
				m := msg.(*proto.AudioPlayBytes)
				return map[string]string{"siteId": m.SiteID, "requestId": m.RequestID}
			},
		},
		{
			Kind:     proto.KindAudioPlayFinished,
			Template: "hermes/audioServer/+siteId/playFinished",
			Fields:   []Field{idField(), sessionField()},
			New:      func() proto.Message { return &proto.AudioPlayFinished{} },
			FromTopic: func(msg proto.Message, values map[string]string) {
				msg.(*proto.AudioPlayFinished).SiteID = values["siteId"]
			},
			TopicValues: func(msg proto.Message) map[string]string {
				return map[string]string{"siteId": msg.(*proto.AudioPlayFinished).SiteID}
			},
		},
		{
			Kind:     proto.KindAudioSummary,
			Template: "hermes/audioServer/+siteId/audioSummary",
			Fields: []Field{
				{Name: "debiasedEnergy", Type: FieldNumber, Required: true},
				{Name: "isSpeech", Type: FieldBoolean},
			},
			New: func() proto.Message { return &proto.AudioSummary{} },
			FromTopic: func(msg proto.Message, values map[string]string) {
				msg.(*proto.AudioSummary).SiteID = values["siteId"]
			},
			TopicValues: func(msg proto.Message) map[string]string {
				return map[string]string{"siteId": msg.(*proto.AudioSummary).SiteID}
			},
		},
		{
			Kind:     proto.KindAudioToggleOn,
			Template: "hermes/audioServer/toggleOn",
			Fields:   []Field{siteField()},
			New:      func() proto.Message { return &proto.AudioToggleOn{} },
		},
		{
			Kind:     proto.KindAudioToggleOff,
			Template: "hermes/audioServer/toggleOff",
			Fields:   []Field{siteField()},
			New:      func() proto.Message { return &proto.AudioToggleOff{} },
		},
		{
			Kind:     proto.KindSummaryToggleOn,
			Template: "hermes/audioServer/toggleSummaryOn",
			Fields:   []Field{siteField()},
			New:      func() proto.Message { return &proto.SummaryToggleOn{} },
		},
		{
			Kind:     proto.KindSummaryToggleOff,
			Template: "hermes/audioServer/toggleSummaryOff",
			Fields:   []Field{siteField()},
			New:      func() proto.Message { return &proto.SummaryToggleOff{} },
		},
		{
			Kind:     proto.KindAudioGetDevices,
			Template: "rhasspy/audioServer/getDevices",
			Fields: []Field{
				{Name: "modes", Type: FieldArray, Required: true},
				siteField(),
				idField(),
				{Name: "test", Type: FieldBoolean},
			},
			New: func() proto.Message { return &proto.AudioGetDevices{} },
		},
		{
			Kind:     proto.KindAudioDevices,
			Template: "rhasspy/audioServer/devices",
			Fields: []Field{
				{Name: "devices", Type: FieldArray, Required: true},
				siteField(),
				idField(),
			},
			New: func() proto.Message { return &proto.AudioDevices{} },
		},
		{
			Kind:     proto.KindAudioRecordError,
			Template: "hermes/error/audioServer/record",
			Fields:   errorFields(),
			New:      func() proto.Message { return &proto.AudioRecordError{} },
		},
		{
			Kind:     proto.KindAudioPlayError,
			Template: "hermes/error/audioServer/play",
			Fields:   errorFields(),
			New:      func() proto.Message { return &proto.AudioPlayError{} },
		},

		// Intent handling
		{
			Kind:     proto.KindHandleToggleOn,
			Template: "rhasspy/handle/toggleOn",
			Fields:   []Field{siteField()},
			New:      func() proto.Message { return &proto.HandleToggleOn{} },
		},
		{
			Kind:     proto.KindHandleToggleOff,
			Template: "rhasspy/handle/toggleOff",
			Fields:   []Field{siteField()},
			New:      func() proto.Message { return &proto.HandleToggleOff{} },
		},

		// Grapheme to phoneme
		{
			Kind:     proto.KindG2pPronounce,
			Template: "rhasspy/g2p/pronounce",
			Fields: []Field{
				{Name: "words", Type: FieldArray, Required: true},
				idField(),
				siteField(),
				sessionField(),
				{Name: "numGuesses", Type: FieldInteger},
			},
			New: func() proto.Message { return &proto.G2pPronounce{} },
		},
		{
			Kind:     proto.KindG2pPhonemes,
			Template: "rhasspy/g2p/phonemes",
			Fields: []Field{
				{Name: "wordPhonemes", Type: FieldObject, Required: true},
				idField(),
				siteField(),
				sessionField(),
			},
			New: func() proto.Message { return &proto.G2pPhonemes{} },
		},
		{
			Kind:     proto.KindG2pError,
			Template: "rhasspy/error/g2p",
			Fields:   errorFields(),
			New:      func() proto.Message { return &proto.G2pError{} },
		},

		// Training
		{
			Kind:     proto.KindIntentGraphRequest,
			Template: "rhasspy/train/getIntentGraph",
			Fields: []Field{
				{Name: "id", Type: FieldString, Required: true},
				siteField(),
			},
			New: func() proto.Message { return &proto.IntentGraphRequest{} },
		},
		{
			Kind:     proto.KindIntentGraph,
			Template: "rhasspy/train/intentGraph/+requestId",
			Binary:   true,
			New:      func() proto.Message { return &proto.IntentGraph{} },
			FromTopic: func(msg proto.Message, values map[string]string) {
				msg.(*proto.IntentGraph).RequestID = values["requestId"]
			},
			TopicValues: func(msg proto.Message) map[string]string {
				return map[string]string{"requestId": msg.(*proto.IntentGraph).RequestID}
			},
		},
	}
}
