// Package gemini 实现 Gemini generateContent API 客户端
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sillo/learning-vault-service/pkg/provider"
)

const (
	defaultEndpoint = "https://generativelanguage.googleapis.com"
	defaultModel    = "gemini-2.0-flash-exp"
)

// Client calls the Gemini generateContent endpoint.
// Client 调用 Gemini generateContent 接口。
type Client struct {
	client *resty.Client
	apiKey string
	model  string
}

// New 创建 Client
func New(endpoint, apiKey, model string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	if model == "" {
		model = defaultModel
	}

	c := resty.New().
		SetBaseURL(endpoint).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &Client{client: c, apiKey: apiKey, model: model}
}

// 请求/响应结构
type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// generate sends a single-turn prompt and returns the raw reply text.
// generate 发送单轮 prompt 并返回原始回复文本。
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini api key is not set")
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(&reqBody).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode(), resp.String())
	}

	var gr generateResponse
	if err := json.Unmarshal(resp.Body(), &gr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return gr.Candidates[0].Content.Parts[0].Text, nil
}

// GenerateSummary asks for a strict-JSON structured summary of a video topic.
// GenerateSummary 请求对视频主题的严格 JSON 结构化总结。
func (c *Client) GenerateSummary(ctx context.Context, title string, extra string) (*provider.Summary, error) {
	var sb strings.Builder
	sb.WriteString("You are an expert educational AI assistant.\n")
	fmt.Fprintf(&sb, "Analyze the following video topic: %q.\n", title)
	if extra != "" {
		fmt.Fprintf(&sb, "Additional Context: %s\n", extra)
	}
	sb.WriteString(`
Provide a structured summary in JSON format with the following fields:
- keyTakeaways: array of 3 strings (brief bullet points)
- recommendedAction: string (a specific action item for the learner)
- timestamp: string (a hypothetical timestamp relevant to the action, e.g., "05:30")

Respond ONLY with raw JSON.
`)

	text, err := c.generate(ctx, sb.String())
	if err != nil {
		return nil, err
	}

	var summary provider.Summary
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &summary); err != nil {
		return nil, fmt.Errorf("parse summary: %w", err)
	}
	return &summary, nil
}

// GenerateReply answers a student question in the context of a video.
// GenerateReply 在视频上下文中回答学生问题。
func (c *Client) GenerateReply(ctx context.Context, message string, extra string) (string, error) {
	if extra == "" {
		extra = "Learning Session"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are a helpful teaching assistant for the video: %q.\n", extra)
	sb.WriteString("Answer the student's question concisely and encouragingly.\n\n")
	fmt.Fprintf(&sb, "Student: %s\nAI:\n", message)

	return c.generate(ctx, sb.String())
}

// stripCodeFence removes a surrounding markdown ```json fence when present
// stripCodeFence 移除包裹回复的 markdown ```json 代码块标记
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

var _ provider.Assistant = (*Client)(nil)
