package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

const publishTimeout = 2 * time.Second

// tokenPublisher is the slice of mqtt.Client the mirror needs.
type tokenPublisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTTMirror republishes events to <prefix>/work-orders/<event>.
type MQTTMirror struct {
	client tokenPublisher
	prefix string
	qos    byte
}

// DialMQTT connects to broker and returns the mirror together with the
// underlying client so the caller can disconnect it.
func DialMQTT(broker, clientID, prefix string) (*MQTTMirror, mqtt.Client, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetConnectTimeout(5 * time.Second)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return NewMQTTMirror(client, prefix), client, nil
}

func NewMQTTMirror(client tokenPublisher, prefix string) *MQTTMirror {
	return &MQTTMirror{
		client: client,
		prefix: prefix,
	}
}

func (m *MQTTMirror) Topic(t Type) string {
	return m.prefix + "/work-orders/" + t.Name()
}

func (m *MQTTMirror) Publish(_ context.Context, e Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		zap.L().Error("marshal event", zap.Error(err))
		return
	}
	topic := m.Topic(e.Type)
	token := m.client.Publish(topic, m.qos, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		zap.L().Warn("mqtt publish timed out", zap.String("topic", topic))
		return
	}
	if err := token.Error(); err != nil {
		zap.L().Warn("mqtt publish failed", zap.String("topic", topic), zap.Error(err))
	}
}
