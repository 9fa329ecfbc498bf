package events

import "testing"

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()

	var got []int
	bus.Subscribe(TopicHubSelected, func(p interface{}) { got = append(got, 1) })
	bus.Subscribe(TopicHubSelected, func(p interface{}) { got = append(got, 2) })

	bus.Publish(TopicHubSelected, HubSelected{HubID: 7})

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("delivery order = %v, want [1 2]", got)
	}
}

func TestPublishTypedPayload(t *testing.T) {
	bus := NewBus()

	var received HubSelected
	bus.Subscribe(TopicHubSelected, func(p interface{}) {
		if hs, ok := p.(HubSelected); ok {
			received = hs
		}
	})

	bus.Publish(TopicHubSelected, HubSelected{HubID: 42})
	if received.HubID != 42 {
		t.Errorf("received payload = %+v", received)
	}
}

func TestTopicsAreIsolated(t *testing.T) {
	bus := NewBus()

	called := false
	bus.Subscribe(TopicDatasetLoaded, func(p interface{}) { called = true })

	bus.Publish(TopicHubSelected, HubSelected{HubID: 1})
	if called {
		t.Error("handler for another topic was invoked")
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus()

	count := 0
	cancel := bus.Subscribe(TopicDatasetLoaded, func(p interface{}) { count++ })

	bus.Publish(TopicDatasetLoaded, DatasetLoaded{DatasetID: "a"})
	cancel()
	bus.Publish(TopicDatasetLoaded, DatasetLoaded{DatasetID: "b"})

	if count != 1 {
		t.Errorf("handler ran %d times after unsubscribe, want 1", count)
	}
}

func TestPublishWithNoSubscribers(t *testing.T) {
	bus := NewBus()
	// Must not panic
	bus.Publish(TopicHubSelected, HubSelected{HubID: 1})
}
