package imagedit

// Topic identifies a domain event published by a controller.
type Topic string

const (
	TopicObjectAdded  Topic = "objectAdded"  // an authored shape was committed
	TopicImageResized Topic = "imageResized" // a resized image object is ready
	TopicImagePanned  Topic = "imagePanned"  // a pan gesture finished
)

// PanOverflow reports whether the viewport extends past the canvas's right
// (X) or bottom (Y) edge after a pan.
type PanOverflow struct {
	X, Y bool
}

// Event is a domain event. Only the fields relevant to Topic are set.
type Event struct {
	Topic Topic

	// TopicObjectAdded: the persisted record and the committed object.
	// TopicImageResized: Object is the new scaled image.
	Properties ObjectProperties
	Object     *Object

	// TopicImagePanned
	Overflow PanOverflow
}

// Subscription allows removing a registered event subscriber.
type Subscription interface {
	Remove()
}

// EventBus publishes domain events to subscribers.
type EventBus interface {
	Publish(e Event)
	Subscribe(topic Topic, fn func(Event)) Subscription
}

type subscriber struct {
	id uint32
	fn func(Event)
}

// Bus is the default EventBus. Subscribers run synchronously in
// registration order.
type Bus struct {
	subs   map[Topic][]subscriber
	nextID uint32
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]subscriber)}
}

type busSubscription struct {
	id    uint32
	bus   *Bus
	topic Topic
}

// Remove unregisters the subscriber. Safe to call more than once.
func (h busSubscription) Remove() {
	if h.bus == nil {
		return
	}
	s := h.bus.subs[h.topic]
	for i := range s {
		if s[i].id == h.id {
			h.bus.subs[h.topic] = append(s[:i:i], s[i+1:]...)
			return
		}
	}
}

// Subscribe registers fn for events on topic.
func (b *Bus) Subscribe(topic Topic, fn func(Event)) Subscription {
	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscriber{id: id, fn: fn})
	return busSubscription{id: id, bus: b, topic: topic}
}

// Publish delivers e to every subscriber of e.Topic. Subscribers added or
// removed during delivery take effect on the next Publish.
func (b *Bus) Publish(e Event) {
	subs := b.subs[e.Topic]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]subscriber, len(subs))
	copy(snapshot, subs)
	for _, s := range snapshot {
		s.fn(e)
	}
}

// SubscriberCount returns the number of subscribers on topic.
func (b *Bus) SubscriberCount(topic Topic) int {
	return len(b.subs[topic])
}

// OnObjectAdded subscribes to committed shapes.
func (b *Bus) OnObjectAdded(fn func(props ObjectProperties, obj *Object)) Subscription {
	return b.Subscribe(TopicObjectAdded, func(e Event) { fn(e.Properties, e.Object) })
}

// OnImageResized subscribes to resize results.
func (b *Bus) OnImageResized(fn func(img *Object)) Subscription {
	return b.Subscribe(TopicImageResized, func(e Event) { fn(e.Object) })
}

// OnImagePanned subscribes to the end of pan gestures.
func (b *Bus) OnImagePanned(fn func(PanOverflow)) Subscription {
	return b.Subscribe(TopicImagePanned, func(e Event) { fn(e.Overflow) })
}
