package entities

import (
	"strings"
	"time"
)

// Event types emitted by the public estimate page. The set is open: any
// string is stored verbatim.
const (
	EventOpen           = "open"
	EventStayPrice      = "stay_price"
	EventScroll80       = "scroll_80"
	EventScheduleSubmit = "schedule_submit"
	EventPlanSelectPre  = "plan_select_"
)

// MaxUserAgentLength bounds the stored user agent.
const MaxUserAgentLength = 512

// AccessLog is one engagement event on a public estimate page. Append-only.
type AccessLog struct {
	ID         string    `json:"id"`
	EstimateID string    `json:"estimate_id"`
	EventType  string    `json:"event_type"`
	UserAgent  string    `json:"user_agent"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsUrgentEvent reports whether the owner should be nudged to follow up now.
func IsUrgentEvent(eventType string) bool {
	switch eventType {
	case EventStayPrice, EventScroll80:
		return true
	default:
		return false
	}
}

// DescribeEvent renders the activity-timeline sentence for an event type.
func DescribeEvent(eventType string) string {
	switch {
	case eventType == EventOpen:
		return "見積もりを開封しました"
	case eventType == EventStayPrice:
		return "金額欄をじっくり見ています"
	case eventType == EventScroll80:
		return "ページを深くスクロールしています"
	case eventType == EventScheduleSubmit:
		return "工事日程の希望を送信しました"
	case strings.HasPrefix(eventType, EventPlanSelectPre):
		if k, ok := ParsePlanKey(strings.TrimPrefix(eventType, EventPlanSelectPre)); ok {
			return k.DefaultLabel() + "を選択しました"
		}
		return "ページを開きました"
	default:
		return "ページを開きました"
	}
}

// EventMetricLabel collapses the open event-type set into a bounded label set.
func EventMetricLabel(eventType string) string {
	switch {
	case eventType == EventOpen, eventType == EventStayPrice, eventType == EventScroll80, eventType == EventScheduleSubmit:
		return eventType
	case strings.HasPrefix(eventType, EventPlanSelectPre):
		if _, ok := ParsePlanKey(strings.TrimPrefix(eventType, EventPlanSelectPre)); ok {
			return eventType
		}
		return "other"
	default:
		return "other"
	}
}

// ActivityItem is an access log joined with the display fields of its
// estimate, as shown on the owner's timeline.
type ActivityItem struct {
	Log          AccessLog
	EstimateID   string
	CustomerName string
	Amount       *int64
}
