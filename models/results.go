// File: /models/results.go
package models

// Transient outcome values returned by the services. These are produced per
// call and never persisted.

type EventResponse struct {
	Message string `json:"message"`
	Event   *Event `json:"event,omitempty"`
}

type EventActionResult struct {
	Succeeded bool          `json:"succeeded"`
	Response  EventResponse `json:"response"`
}

func EventActionSucceed(message string, event *Event) *EventActionResult {
	return &EventActionResult{
		Succeeded: true,
		Response:  EventResponse{Message: message, Event: event},
	}
}

func EventActionFailed(message string) *EventActionResult {
	return &EventActionResult{
		Succeeded: false,
		Response:  EventResponse{Message: message},
	}
}

type UpdateEventResult struct {
	Succeeded bool   `json:"succeeded"`
	Message   string `json:"message"`
}

// UpdateEventFail is the default failure, used when the target event does
// not exist.
func UpdateEventFail() *UpdateEventResult {
	return &UpdateEventResult{Succeeded: false, Message: "Event not found."}
}

func UpdateEventFailed(message string) *UpdateEventResult {
	return &UpdateEventResult{Succeeded: false, Message: message}
}

func UpdateEventOk() *UpdateEventResult {
	return &UpdateEventResult{Succeeded: true, Message: "Event updated"}
}

type LoginResult struct {
	Succeeded    bool   `json:"succeeded"`
	Token        string `json:"-"` // carried by the session cookie, never the body
	ErrorMessage string `json:"error_message,omitempty"`
}

type RegistrationResult struct {
	Message string `json:"message"`
}
