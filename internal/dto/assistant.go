package dto

// SummaryRequest AI 总结的请求参数
type SummaryRequest struct {
	Title   string `json:"title" form:"title" binding:"required"` // 视频标题
	Context string `json:"context" form:"context"`                // 可选, 附加上下文
}

// SummaryDTO AI 总结响应
type SummaryDTO struct {
	KeyTakeaways      []string `json:"keyTakeaways"`      // 三条要点
	RecommendedAction string   `json:"recommendedAction"` // 建议的下一步
	Timestamp         string   `json:"timestamp"`         // 建议回看的时间点 mm:ss
}

// ChatRequest AI 对话的请求参数
type ChatRequest struct {
	Message string `json:"message" form:"message" binding:"required"` // 用户消息
	Context string `json:"context" form:"context"`                    // 可选, 当前学习内容
}

// ChatDTO AI 对话响应
type ChatDTO struct {
	Message string `json:"message"` // 助手回复
}
