package service

import (
	"context"

	"prontoshop/config"
	"prontoshop/pkg/log"
	"prontoshop/types"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

const llmConfidence = 0.99

var _ IAssistantService = (*LLMResponder)(nil)

// LLMResponder 真实推理后端，与规则应答同接口
type LLMResponder struct {
	client openai.Client
	model  string
	prompt string
}

func NewLLMResponder(cfg *config.AssistantConfig) *LLMResponder {
	opts := []option.RequestOption{option.WithAPIKey(cfg.ApiKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	prompt := cfg.SystemPrompt
	if prompt == "" {
		prompt = "You are the ProntoShop support assistant. Answer briefly about orders, returns, accounts, vendors, payments and shipping."
	}

	return &LLMResponder{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
		prompt: prompt,
	}
}

func (r *LLMResponder) Respond(ctx context.Context, message string) (*types.ChatResponse, error) {
	params := openai.ChatCompletionNewParams{
		Model: r.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(r.prompt),
			openai.UserMessage(message),
		},
	}

	completion, err := r.client.Chat.Completions.New(ctx, params)
	if err != nil {
		log.L.Error("assistant completion failed", zap.Error(err))
		// LLM 不可用时退回规则应答，不中断会话
		return NewRuleResponder(0).Respond(ctx, message)
	}
	if len(completion.Choices) == 0 {
		log.L.Warn("assistant completion returned no choices")
		return NewRuleResponder(0).Respond(ctx, message)
	}

	return &types.ChatResponse{
		Message:    completion.Choices[0].Message.Content,
		Confidence: llmConfidence,
	}, nil
}
