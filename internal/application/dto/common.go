package dto

// Envelope cuerpo uniforme de las respuestas exitosas.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse cuerpo de error HTTP. Stack solo se llena fuera de producción.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// OK envuelve data en una respuesta exitosa.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKWithMessage envuelve data con un mensaje informativo.
func OKWithMessage(data interface{}, msg string) Envelope {
	return Envelope{Success: true, Data: data, Message: msg}
}

// StatusResponse salida de GET /api/status.
type StatusResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}
