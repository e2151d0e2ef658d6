package imagedit

import "testing"

func TestBusPublishOrder(t *testing.T) {
	b := NewBus()
	var order []int
	b.Subscribe(TopicImagePanned, func(Event) { order = append(order, 1) })
	b.Subscribe(TopicImagePanned, func(Event) { order = append(order, 2) })
	b.Subscribe(TopicObjectAdded, func(Event) { order = append(order, 99) })

	b.Publish(Event{Topic: TopicImagePanned})
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
}

func TestBusSubscriptionRemove(t *testing.T) {
	b := NewBus()
	calls := 0
	sub := b.Subscribe(TopicImageResized, func(Event) { calls++ })
	keep := b.Subscribe(TopicImageResized, func(Event) {})

	sub.Remove()
	sub.Remove()
	b.Publish(Event{Topic: TopicImageResized})
	if calls != 0 {
		t.Errorf("removed subscriber called %d times", calls)
	}
	if n := b.SubscriberCount(TopicImageResized); n != 1 {
		t.Errorf("SubscriberCount = %d, want 1", n)
	}
	keep.Remove()
	if n := b.SubscriberCount(TopicImageResized); n != 0 {
		t.Errorf("SubscriberCount = %d, want 0", n)
	}
}

func TestBusSubscribeDuringPublish(t *testing.T) {
	b := NewBus()
	late := 0
	b.Subscribe(TopicObjectAdded, func(Event) {
		b.Subscribe(TopicObjectAdded, func(Event) { late++ })
	})
	b.Publish(Event{Topic: TopicObjectAdded})
	if late != 0 {
		t.Errorf("subscriber added during publish ran %d times", late)
	}
	b.Publish(Event{Topic: TopicObjectAdded})
	if late != 1 {
		t.Errorf("late subscriber ran %d times, want 1", late)
	}
}

func TestBusTypedHelpers(t *testing.T) {
	b := NewBus()
	obj := NewLine(0, 0, 1, 1)

	var gotProps ObjectProperties
	var gotObj, gotImg *Object
	var gotOverflow PanOverflow
	b.OnObjectAdded(func(p ObjectProperties, o *Object) { gotProps, gotObj = p, o })
	b.OnImageResized(func(o *Object) { gotImg = o })
	b.OnImagePanned(func(o PanOverflow) { gotOverflow = o })

	b.Publish(Event{Topic: TopicObjectAdded, Properties: ObjectProperties{ID: "x"}, Object: obj})
	b.Publish(Event{Topic: TopicImageResized, Object: obj})
	b.Publish(Event{Topic: TopicImagePanned, Overflow: PanOverflow{X: true}})

	if gotProps.ID != "x" || gotObj != obj {
		t.Errorf("OnObjectAdded got %+v, %v", gotProps, gotObj)
	}
	if gotImg != obj {
		t.Error("OnImageResized did not receive the object")
	}
	if !gotOverflow.X || gotOverflow.Y {
		t.Errorf("OnImagePanned got %+v", gotOverflow)
	}
}
