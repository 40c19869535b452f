package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/examkit/proctor/pkg/models"
)

func TestCountGrowsWithText(t *testing.T) {
	c := Default()

	assert.Equal(t, 0, c.Count(""))

	short := c.Count("hello")
	long := c.Count("hello world, this is a longer sentence about dynamic programming")
	assert.Greater(t, short, 0)
	assert.Greater(t, long, short)
}

func TestCountMessagesIncludesOverhead(t *testing.T) {
	c := Default()

	messages := []models.Envelope{
		{Role: models.RoleUser, Content: "first question"},
		{Role: models.RoleAssistant, Content: "first answer"},
	}

	sum := c.Count("first question") + c.Count("first answer")
	total := c.CountMessages(messages)
	assert.Equal(t, sum+2*messageOverhead, total)
}

func TestFallbackEstimation(t *testing.T) {
	c := &Counter{} // no encoder
	assert.Equal(t, 10, c.Count("0123456789012345678901234567890123456789"))
}

func TestDefaultIsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}
