package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// MatrixUpdatedEvent tells connected dashboards that the data model changed
// and which department was touched. A nil department id means the whole model
// (e.g. an import).
type MatrixUpdatedEvent struct {
	Type         string `json:"type"`
	Action       string `json:"action"`
	DepartmentID string `json:"departmentId,omitempty"`
	Timestamp    string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyMatrixUpdated broadcasts a change event. It is a no-op until a hub is
// installed, so usecases can call it unconditionally.
func NotifyMatrixUpdated(action string, departmentID uuid.UUID) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := MatrixUpdatedEvent{
		Type:      "matrix_updated",
		Action:    action,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if departmentID != uuid.Nil {
		evt.DepartmentID = departmentID.String()
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
