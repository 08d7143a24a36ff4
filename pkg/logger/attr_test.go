package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/todokit/pkg/logger"
)

func TestError(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.Any().(error).Error())
}

func TestUserID(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.UserID(nil))
	assert.Equal(t, "user_id", logger.UserID("u1").Key)
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	assert.Equal(t, "abc", logger.RequestID("abc").Value.String())
}

func TestSimpleAttrs(t *testing.T) {
	assert.Equal(t, "component", logger.Component("auth").Key)
	assert.Equal(t, "event", logger.Event("login").Key)
	assert.Equal(t, int64(401), logger.StatusCode(401).Value.Int64())
}
