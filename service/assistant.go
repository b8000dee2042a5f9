package service

import (
	"context"
	"strings"
	"time"

	"prontoshop/config"
	"prontoshop/types"
)

var _ IAssistantService = (*RuleResponder)(nil)

// IAssistantService 客服应答。规则应答为默认实现，配置了 api key
// 时可换成 LLM 实现，接口不变。
type IAssistantService interface {
	Respond(ctx context.Context, message string) (*types.ChatResponse, error)
}

// rule 按声明顺序匹配，第一条命中即返回
type rule struct {
	keywords   []string
	reply      string
	confidence float64
}

var cannedRules = []rule{
	{
		keywords:   []string{"order"},
		confidence: 0.95,
		reply: "To place an order, browse our catalog, add items to your cart and proceed to checkout.\n" +
			"You can track an existing order from the order-status page using your order number.\n" +
			"Need anything else? Just ask about returns, payments or shipping.",
	},
	{
		keywords:   []string{"return", "refund"},
		confidence: 0.95,
		reply: "Returns are accepted within 30 days of delivery.\n" +
			"Start a return from your order history and we will email you a prepaid label.\n" +
			"Refunds are issued to the original payment method within 5-7 business days.",
	},
	{
		keywords:   []string{"account", "password", "login"},
		confidence: 0.95,
		reply: "You can manage your account from the profile page: update your name, address and password.\n" +
			"Forgot your password? Use the reset link on the sign-in page.",
	},
	{
		keywords:   []string{"vendor", "sell"},
		confidence: 0.95,
		reply: "Interested in selling on ProntoShop?\n" +
			"Register a vendor account, add your business address and start listing products right away.",
	},
	{
		keywords:   []string{"payment", "pay", "card"},
		confidence: 0.95,
		reply: "We accept major credit cards and PayPal.\n" +
			"Payment is captured when your order ships; until then it stays in PENDING state.",
	},
	{
		keywords:   []string{"shipping", "deliver"},
		confidence: 0.95,
		reply: "We offer STANDARD (5-7 days), EXPRESS (2-3 days) and OVERNIGHT shipping.\n" +
			"Shipping cost is calculated at checkout based on the selected method.",
	},
	{
		keywords:   []string{"contact", "support", "help"},
		confidence: 0.90,
		reply: "You can reach our support team at support@prontoshop.example or via this chat.\n" +
			"We reply within one business day.",
	},
	{
		keywords:   []string{"hello", "hi", "hey"},
		confidence: 0.90,
		reply:      "Hello! Welcome to ProntoShop. How can I help you today?",
	},
}

const fallbackReply = "I can help you with the following topics:\n" +
	"- placing and tracking orders\n" +
	"- returns and refunds\n" +
	"- account settings\n" +
	"- becoming a vendor\n" +
	"- payments and shipping\n" +
	"Just type a question about any of them."

const fallbackConfidence = 0.80

// RuleResponder 固定关键词查表，带模拟延迟。不是模型，没有上下文。
type RuleResponder struct {
	delay time.Duration
}

func NewRuleResponder(delay time.Duration) *RuleResponder {
	return &RuleResponder{delay: delay}
}

func (r *RuleResponder) Respond(ctx context.Context, message string) (*types.ChatResponse, error) {
	if r.delay > 0 {
		select {
		case <-time.After(r.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	lowered := strings.ToLower(message)
	for _, rule := range cannedRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return &types.ChatResponse{
					Message:    rule.reply,
					Confidence: rule.confidence,
				}, nil
			}
		}
	}

	return &types.ChatResponse{
		Message:    fallbackReply,
		Confidence: fallbackConfidence,
	}, nil
}

// NewAssistant 根据配置选择实现
func NewAssistant(cfg *config.AssistantConfig) IAssistantService {
	delay := time.Second
	if cfg != nil && cfg.DelayMs > 0 {
		delay = time.Duration(cfg.DelayMs) * time.Millisecond
	}
	if cfg != nil && cfg.UseLLM && cfg.ApiKey != "" {
		return NewLLMResponder(cfg)
	}
	return NewRuleResponder(delay)
}
