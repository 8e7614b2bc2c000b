package event

// Listener 事件订阅者
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc 函数形式的订阅者
type ListenerFunc func(e Event)

// OnEvent 实现 Listener
func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// SubscriptionID 订阅句柄，用于取消订阅
type SubscriptionID int

type subscription struct {
	id       SubscriptionID
	listener Listener
}

// Dispatcher 事件分发器
//
// 订阅者按订阅顺序被调用；All 订阅接收全部事件，在具体类型订阅者之后调用。
type Dispatcher struct {
	nextID    SubscriptionID
	listeners map[EventType][]subscription
	all       []subscription
}

// NewDispatcher 创建新的分发器
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		nextID:    1,
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe 订阅指定类型的事件
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) SubscriptionID {
	id := d.nextID
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: id, listener: listener})
	return id
}

// SubscribeAll 订阅全部事件
func (d *Dispatcher) SubscribeAll(listener Listener) SubscriptionID {
	id := d.nextID
	d.nextID++
	d.all = append(d.all, subscription{id: id, listener: listener})
	return id
}

// Unsubscribe 取消订阅，未知句柄为空操作
func (d *Dispatcher) Unsubscribe(id SubscriptionID) {
	for eventType, subs := range d.listeners {
		d.listeners[eventType] = removeSubscription(subs, id)
	}
	d.all = removeSubscription(d.all, id)
}

func removeSubscription(subs []subscription, id SubscriptionID) []subscription {
	for i, s := range subs {
		if s.id == id {
			return append(subs[:i:i], subs[i+1:]...)
		}
	}
	return subs
}

// Dispatch 把事件发送给所有订阅者
func (d *Dispatcher) Dispatch(e Event) {
	for _, s := range d.listeners[e.Type] {
		s.listener.OnEvent(e)
	}
	for _, s := range d.all {
		s.listener.OnEvent(e)
	}
}

// DispatchAll 按顺序分发一批事件
func (d *Dispatcher) DispatchAll(events []Event) {
	for _, e := range events {
		d.Dispatch(e)
	}
}
