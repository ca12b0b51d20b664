package rabbitmq

import (
	"context"
	"testing"

	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/GoArmGo/PinAlbum/internal/logger"
	"github.com/GoArmGo/PinAlbum/internal/messaging/payloads"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

type fakeAcknowledger struct {
	acked   int
	nacked  int
	requeue bool
}

func (f *fakeAcknowledger) Ack(uint64, bool) error { f.acked++; return nil }

func (f *fakeAcknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	f.nacked++
	f.requeue = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(uint64, bool) error { return nil }

func TestHandleDelivery(t *testing.T) {
	placeID := uuid.New()
	validBody := []byte(`{"place_id":"` + placeID.String() + `"}`)

	tests := []struct {
		name       string
		body       []byte
		handlerErr error
		wantAck    int
		wantNack   int
		wantCalled bool
	}{
		{name: "Processed", body: validBody, wantAck: 1, wantCalled: true},
		{name: "Already In Progress", body: validBody, handlerErr: domain.ErrSyncInProgress, wantAck: 1, wantCalled: true},
		{name: "Sync Failed", body: validBody, handlerErr: domain.ErrNetwork, wantNack: 1, wantCalled: true},
		{name: "Malformed Body", body: []byte("{"), wantNack: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack := &fakeAcknowledger{}
			msg := amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: tt.body}

			called := false
			handler := func(_ context.Context, p payloads.AlbumRefreshPayload) error {
				called = true
				assert.Equal(t, placeID, p.PlaceID)
				return tt.handlerErr
			}

			handleDelivery(context.Background(), msg, handler, logger.Discard())

			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantAck, ack.acked)
			assert.Equal(t, tt.wantNack, ack.nacked)
			assert.False(t, ack.requeue)
		})
	}
}
