package dto

// ShellStateResponse estado observable de un layout montado.
// Collapsed y Offset salen del mismo Frame, nunca por separado.
type ShellStateResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Collapsed bool   `json:"collapsed"`
	State     string `json:"state"`
	Offset    string `json:"offset"`
}
