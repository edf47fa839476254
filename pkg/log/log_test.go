package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))

	ctx, id := WithCorrelationID(context.Background())
	assert.Len(t, id, 36)
	assert.Equal(t, id, GetCorrelationID(ctx))
}

func TestIsRelevantField(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"correlation_id", true},
		{"status_code", true},
		{"session_id", true},
		{"session_count", true},
		{"remote_addr", false},
		{"user_agent", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isRelevantField(tt.key), tt.key)
	}
}

func TestForSession(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	previous := L
	L = &logger{entry: logrus.NewEntry(base)}
	t.Cleanup(func() { L = previous })

	ctx, id := WithCorrelationID(context.Background())
	ForSession(ctx, "abc123").Info("sessão criada")

	assert.Contains(t, buf.String(), `"session_id":"abc123"`)
	assert.Contains(t, buf.String(), `"correlation_id":"`+id+`"`)
}
