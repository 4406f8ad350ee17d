package service

import (
	"context"
	"fmt"

	"github.com/sillo/learning-vault-service/global"
	"github.com/sillo/learning-vault-service/internal/dto"
	"github.com/sillo/learning-vault-service/pkg/logger"
	"github.com/sillo/learning-vault-service/pkg/provider"

	"go.uber.org/zap"
)

// AssistantService 定义 AI 助手业务服务接口
// 两个操作都在提供方失败时返回确定性回退内容, 从不返回错误
type AssistantService interface {
	// Summary 生成学习总结, 失败时返回基于标题的固定回退
	Summary(ctx context.Context, title, context string) *dto.SummaryDTO

	// Chat 生成助手回复, 失败时返回致歉回退文案
	Chat(ctx context.Context, message, context string) *dto.ChatDTO
}

// assistantService 实现 AssistantService 接口
type assistantService struct {
	ai provider.Assistant
}

// NewAssistantService 创建 AssistantService 实例
func NewAssistantService(ai provider.Assistant) AssistantService {
	return &assistantService{ai: ai}
}

// fallbackSummary 提供方失败时基于标题构造的回退总结
func fallbackSummary(title string) *dto.SummaryDTO {
	return &dto.SummaryDTO{
		KeyTakeaways: []string{
			fmt.Sprintf("Analysis of %s concepts", title),
			"Key patterns and architectural decisions",
			"Implementation strategies for scalability",
		},
		RecommendedAction: "Review the core concepts introduced in the first section.",
		Timestamp:         "00:00",
	}
}

// Summary 生成学习总结
func (s *assistantService) Summary(ctx context.Context, title, extra string) *dto.SummaryDTO {
	summary, err := s.ai.GenerateSummary(ctx, title, extra)
	if err != nil {
		global.Log().Warn("ai summary failed, using fallback",
			zap.String(logger.FieldProvider, "gemini"),
			zap.String("title", title),
			zap.Error(err))
		return fallbackSummary(title)
	}
	if len(summary.KeyTakeaways) == 0 {
		return fallbackSummary(title)
	}
	return &dto.SummaryDTO{
		KeyTakeaways:      summary.KeyTakeaways,
		RecommendedAction: summary.RecommendedAction,
		Timestamp:         summary.Timestamp,
	}
}

// Chat 生成助手回复
func (s *assistantService) Chat(ctx context.Context, message, extra string) *dto.ChatDTO {
	reply, err := s.ai.GenerateReply(ctx, message, extra)
	if err != nil {
		global.Log().Warn("ai chat failed, using fallback",
			zap.String(logger.FieldProvider, "gemini"),
			zap.Error(err))
		return &dto.ChatDTO{
			Message: "I'm having trouble connecting to my brain right now. Please check the API key configuration and try again.",
		}
	}
	return &dto.ChatDTO{Message: reply}
}
