package models

// NotificationRequest is an ephemeral value object; nothing is
// persisted. Either Recipients or SelectionRule is set.
type NotificationRequest struct {
	Type          string         `json:"type"`
	Recipients    []string       `json:"recipients,omitempty"`
	SelectionRule *SelectionRule `json:"selectionRule,omitempty"`
	Title         string         `json:"title" binding:"required"`
	Message       string         `json:"message" binding:"required"`
}

// SelectionRule picks recipients by member attributes instead of an
// explicit list.
type SelectionRule struct {
	Status string `json:"status,omitempty"`
}
