package mailer

import (
	"fmt"
	"strings"

	"github.com/launcherlock/answer-relay/models"
)

// Subject returns the notification subject line for a device's answers.
func Subject(deviceID string) string {
	return fmt.Sprintf("[LauncherLock] Answers from %s", deviceID)
}

// BuildMailText renders the plain-text mail body for an answer payload.
// The layout is fixed: guardians' mail filters and earlier relay
// revisions both depend on it.
func BuildMailText(payload models.AnswerPayload) string {
	lines := make([]string, 0, len(payload.Questions)*2+4)
	lines = append(lines, fmt.Sprintf("deviceId: %s", payload.DeviceID))
	lines = append(lines, fmt.Sprintf("answeredAt: %s", payload.AnsweredAt))
	lines = append(lines, "")
	lines = append(lines, "questions:")

	for idx, qa := range payload.Questions {
		lines = append(lines, fmt.Sprintf("%d. Q: %s", idx+1, qa.Q))
		lines = append(lines, fmt.Sprintf("   A: %s", qa.A))
	}

	return strings.Join(lines, "\n")
}
