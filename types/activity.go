package types

type AppendLogRequest struct {
	Action   string         `json:"action" binding:"required"`
	UserId   int64          `json:"user_id"`
	Metadata map[string]any `json:"metadata"`
}

type DeleteLogsResponse struct {
	Deleted int64 `json:"deleted"`
}
