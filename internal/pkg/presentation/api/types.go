package api

import (
	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"
)

type acknowledgeRequest struct {
	By    string `json:"by"`
	Notes string `json:"notes,omitempty"`
}

type clearRequest struct {
	By     string `json:"by"`
	Reason string `json:"reason,omitempty"`
}

type escalateRequest struct {
	Severity types.AlarmSeverity `json:"severity"`
	By       string              `json:"by"`
	Reason   string              `json:"reason,omitempty"`
}

type suppressRequest struct {
	By              string `json:"by"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	Reason          string `json:"reason,omitempty"`
}

type createIncidentRequest struct {
	CorrelationID string `json:"correlationID"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	AssignedTo    string `json:"assignedTo,omitempty"`
}

type processedEventResponse struct {
	Event       types.NetworkEvent       `json:"event"`
	Correlation types.CorrelationResult  `json:"correlation"`
	RuleResults []types.RuleActionResult `json:"ruleResults"`
}
