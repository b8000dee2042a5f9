package types

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Message    string  `json:"message"`
	Confidence float64 `json:"confidence"`
}
