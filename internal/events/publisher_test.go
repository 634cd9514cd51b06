package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewEvent(t *testing.T) {
	event := NewEvent(EventAccountRegistered, AccountRegisteredEvent{
		AccountID: 5,
		Username:  "lien",
		Role:      "doctor",
	})

	if event.ID == "" {
		t.Error("event ID must be set")
	}
	if event.Type != EventAccountRegistered {
		t.Errorf("type = %q, want %q", event.Type, EventAccountRegistered)
	}
	if event.Source != "hospital-service" {
		t.Errorf("source = %q", event.Source)
	}
	if event.Version != "1.0" {
		t.Errorf("version = %q", event.Version)
	}
	if event.Timestamp.IsZero() {
		t.Error("timestamp must be set")
	}
}

func TestMockEventPublisher(t *testing.T) {
	publisher := NewMockEventPublisher(testLogger())
	ctx := context.Background()

	if err := publisher.Publish(ctx, NewEvent(EventAppointmentCreated, AppointmentCreatedEvent{AppointmentID: 1})); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := publisher.Publish(ctx, NewEvent(EventAppointmentDeleted, AppointmentDeletedEvent{AppointmentID: 1})); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 2 {
		t.Fatalf("published = %d, want 2", len(published))
	}
	if published[0].Type != EventAppointmentCreated || published[1].Type != EventAppointmentDeleted {
		t.Errorf("unexpected event order: %s, %s", published[0].Type, published[1].Type)
	}

	publisher.ClearEvents()
	if len(publisher.GetPublishedEvents()) != 0 {
		t.Error("ClearEvents should empty the recorded list")
	}
}

func TestGoChannelPublisherDelivers(t *testing.T) {
	logger := testLogger()
	pubsub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))

	messages, err := pubsub.Subscribe(context.Background(), "hospital.events")
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	publisher := &watermillPublisher{
		publisher: pubsub,
		topic:     "hospital.events",
		logger:    logger,
	}
	defer publisher.Close()

	event := NewEvent(EventAppointmentCreated, AppointmentCreatedEvent{
		AppointmentID: 9,
		PatientID:     1,
		DoctorID:      2,
		Date:          "2026-09-01",
		Time:          "10:00:00",
	})
	if err := publisher.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	select {
	case msg := <-messages:
		msg.Ack()

		if msg.UUID != event.ID {
			t.Errorf("message UUID = %q, want event ID %q", msg.UUID, event.ID)
		}
		if got := msg.Metadata.Get("event_type"); got != EventAppointmentCreated {
			t.Errorf("event_type metadata = %q", got)
		}

		var decoded Event
		if err := json.Unmarshal(msg.Payload, &decoded); err != nil {
			t.Fatalf("payload is not a JSON event: %v", err)
		}
		if decoded.Type != EventAppointmentCreated {
			t.Errorf("decoded type = %q", decoded.Type)
		}

	case <-time.After(time.Second):
		t.Fatal("no message delivered within 1s")
	}
}
