// Package proto defines the closed vocabulary of Hermes protocol messages.
// Each variant is a plain struct whose JSON tags give the exact wire field
// names. Fields carried in the topic instead of the payload are tagged
// `json:"-"`.
package proto

// Kind tags a protocol message variant.
type Kind string

// Message is implemented by every protocol message variant.
type Message interface {
	Kind() Kind
}

// BinaryMessage is implemented by variants whose payload is raw bytes
// (WAV audio, serialized intent graphs) instead of a JSON document.
type BinaryMessage interface {
	Message
	Payload() []byte
	SetPayload([]byte)
}

// DefaultSiteID is the site used when a message leaves siteId unset.
const DefaultSiteID = "default"

// SiteOrDefault maps an absent site id to the protocol default.
func SiteOrDefault(siteID string) string {
	if siteID == "" {
		return DefaultSiteID
	}
	return siteID
}

const (
	KindHotwordToggleOn  Kind = "hotwordToggleOn"
	KindHotwordToggleOff Kind = "hotwordToggleOff"
	KindHotwordDetected  Kind = "hotwordDetected"

	KindAsrToggleOn       Kind = "asrToggleOn"
	KindAsrToggleOff      Kind = "asrToggleOff"
	KindAsrStartListening Kind = "asrStartListening"
	KindAsrStopListening  Kind = "asrStopListening"
	KindAsrTextCaptured   Kind = "asrTextCaptured"
	KindAsrError          Kind = "asrError"
	KindAsrTrain          Kind = "asrTrain"
	KindAsrTrainSuccess   Kind = "asrTrainSuccess"
	KindAsrAudioCaptured  Kind = "asrAudioCaptured"

	KindNluQuery               Kind = "nluQuery"
	KindNluIntent              Kind = "nluIntent"
	KindNluIntentNotRecognized Kind = "nluIntentNotRecognized"
	KindNluError               Kind = "nluError"

	KindTtsSay         Kind = "ttsSay"
	KindTtsSayFinished Kind = "ttsSayFinished"

	KindDialogueStartSession        Kind = "dialogueStartSession"
	KindDialogueSessionQueued       Kind = "dialogueSessionQueued"
	KindDialogueSessionStarted      Kind = "dialogueSessionStarted"
	KindDialogueContinueSession     Kind = "dialogueContinueSession"
	KindDialogueEndSession          Kind = "dialogueEndSession"
	KindDialogueSessionEnded        Kind = "dialogueSessionEnded"
	KindDialogueIntentNotRecognized Kind = "dialogueIntentNotRecognized"
	KindDialogueConfigure           Kind = "dialogueConfigure"
	KindDialogueError               Kind = "dialogueError"

	KindAudioFrame        Kind = "audioFrame"
	KindAudioSessionFrame Kind = "audioSessionFrame"
	KindAudioPlayBytes    Kind = "audioPlayBytes"
	KindAudioPlayFinished Kind = "audioPlayFinished"
	KindAudioSummary      Kind = "audioSummary"
	KindAudioToggleOn     Kind = "audioToggleOn"
	KindAudioToggleOff    Kind = "audioToggleOff"
	KindSummaryToggleOn   Kind = "summaryToggleOn"
	KindSummaryToggleOff  Kind = "summaryToggleOff"
	KindAudioGetDevices   Kind = "audioGetDevices"
	KindAudioDevices      Kind = "audioDevices"
	KindAudioRecordError  Kind = "audioRecordError"
	KindAudioPlayError    Kind = "audioPlayError"

	KindHandleToggleOn  Kind = "handleToggleOn"
	KindHandleToggleOff Kind = "handleToggleOff"

	KindG2pPronounce Kind = "g2pPronounce"
	KindG2pPhonemes  Kind = "g2pPhonemes"
	KindG2pError     Kind = "g2pError"

	KindIntentGraphRequest Kind = "intentGraphRequest"
	KindIntentGraph        Kind = "intentGraph"
)
