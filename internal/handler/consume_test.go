package handler_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campuslib/lending-service/internal/handler"
	"github.com/campuslib/lending-service/internal/model"
)

// The consumer group re-enters Consume after every rebalance, calling Setup
// again on the same handler. Back-to-back sessions must be safe.
func TestConsumer_SurvivesRebalance(t *testing.T) {
	t.Parallel()
	c := handler.NewConsumer(handler.NewLogSender(zap.NewExample()), zap.NewExample())

	require.NoError(t, c.Setup(nil))
	require.NotPanics(t, func() {
		require.NoError(t, c.Setup(nil))
		require.NoError(t, c.Cleanup(nil))
		require.NoError(t, c.Setup(nil))
	})
}

func TestLogSender_Send(t *testing.T) {
	t.Parallel()
	s := handler.NewLogSender(zap.NewExample())
	require.NoError(t, s.Send(model.FineNotification{Email: "kate@campus.edu"}))
}
