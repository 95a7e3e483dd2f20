package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/launcherlock/answer-relay/models"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "[LauncherLock] Answers from dev-1", Subject("dev-1"))
}

func TestBuildMailText(t *testing.T) {
	payload := models.AnswerPayload{
		DeviceID:   "dev-1",
		AnsweredAt: "2026-08-30T18:04:00Z",
		Questions: []models.QuestionAnswer{
			{Q: "What is your favorite color?", A: "blue"},
			{Q: "City of birth?", A: "Oslo"},
		},
	}

	want := "deviceId: dev-1\n" +
		"answeredAt: 2026-08-30T18:04:00Z\n" +
		"\n" +
		"questions:\n" +
		"1. Q: What is your favorite color?\n" +
		"   A: blue\n" +
		"2. Q: City of birth?\n" +
		"   A: Oslo"

	assert.Equal(t, want, BuildMailText(payload))
}

func TestBuildMailTextSingleQuestion(t *testing.T) {
	payload := models.AnswerPayload{
		DeviceID:   "d",
		AnsweredAt: "now",
		Questions:  []models.QuestionAnswer{{Q: "q", A: "a"}},
	}

	assert.Equal(t, "deviceId: d\nansweredAt: now\n\nquestions:\n1. Q: q\n   A: a", BuildMailText(payload))
}
