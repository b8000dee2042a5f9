package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"prontoshop/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleResponderOrderKeyword(t *testing.T) {
	r := NewRuleResponder(0)

	for _, message := range []string{
		"where is my order?",
		"ORDER status please",
		"I want to track my OrDeR",
	} {
		resp, err := r.Respond(context.Background(), message)
		require.NoError(t, err)
		assert.Equal(t, 0.95, resp.Confidence)
		assert.Contains(t, resp.Message, "order-status page")
	}
}

func TestRuleResponderFirstMatchWins(t *testing.T) {
	r := NewRuleResponder(0)

	// "order" 排在 "return" 前面，两个词都出现时走 order 规则
	resp, err := r.Respond(context.Background(), "can I return my order")
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "order-status page")
}

func TestRuleResponderFallback(t *testing.T) {
	r := NewRuleResponder(0)

	resp, err := r.Respond(context.Background(), "what is the meaning of life")
	require.NoError(t, err)
	assert.Equal(t, 0.80, resp.Confidence)
	assert.Contains(t, resp.Message, "I can help you with the following topics")
}

func TestRuleResponderContextCancelled(t *testing.T) {
	r := NewRuleResponder(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Respond(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLLMResponderFallsBackOnEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cmpl-1","object":"chat.completion","created":0,"model":"m","choices":[]}`))
	}))
	defer srv.Close()

	r := NewLLMResponder(&config.AssistantConfig{ApiKey: "k", BaseURL: srv.URL, Model: "m"})

	// 后端返回空 choices 时退回规则应答而不是崩溃
	resp, err := r.Respond(context.Background(), "where is my order")
	require.NoError(t, err)
	assert.Equal(t, 0.95, resp.Confidence)
	assert.Contains(t, resp.Message, "order-status page")
}

func TestNewAssistantDefaultsToRules(t *testing.T) {
	svc := NewAssistant(&config.AssistantConfig{DelayMs: 1})
	_, ok := svc.(*RuleResponder)
	assert.True(t, ok)

	// use_llm 开了但没有 key，仍然回退规则应答
	svc = NewAssistant(&config.AssistantConfig{UseLLM: true})
	_, ok = svc.(*RuleResponder)
	assert.True(t, ok)
}
