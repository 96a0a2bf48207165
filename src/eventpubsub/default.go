package eventpubsub

import (
	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
)

var bus EventBus.Bus

func Init() {
	bus = EventBus.New()
}

// Publish is a no-op until Init has been called, so library code can emit
// progress events without requiring a bus.
func Publish(topic string, event interface{}) {
	if bus == nil {
		return
	}

	bus.Publish(topic, event)
}

func Subscribe(topic string, callbackFn interface{}) error {
	if err := bus.SubscribeAsync(topic, callbackFn, false); err != nil {
		return err
	}

	log.Infof("Subscribed to topic %s", topic)
	return nil
}

// Flush blocks until all async callbacks in flight have returned.
func Flush() {
	if bus == nil {
		return
	}

	bus.WaitAsync()
}
