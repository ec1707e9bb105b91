package service

// Event types pushed over the session websockets. Watchers receive every
// mutation event; the participant connection receives progress updates.
const (
	EventAnswerSaved    = "answer_saved"
	EventStepChanged    = "step_changed"
	EventSessionReset   = "session_reset"
	EventProgressUpdate = "progress_update"
)

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToWatchers(sessionID string, msgType string, payload interface{})
	BroadcastToParticipant(sessionID string, msgType string, payload interface{})
}
