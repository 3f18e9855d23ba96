package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/markusressel/temp2go/internal/configuration"
	"github.com/markusressel/temp2go/internal/sensors"
	"github.com/markusressel/temp2go/internal/ui"
)

const (
	topicDigit       = "digit"
	topicTemperature = "temperature"

	disconnectQuiesce = 250
	tokenTimeout      = 10 * time.Second
)

type Observer interface {
	Observe(reading sensors.Reading)
}

// MqttBridge converts digits published on <prefix>/<sensor>/digit and publishes
// the resulting reading on <prefix>/<sensor>/temperature.
type MqttBridge struct {
	config   configuration.MqttConfig
	registry *sensors.Registry
	observer Observer
	client   mqtt.Client
}

func NewMqttBridge(config configuration.MqttConfig, registry *sensors.Registry, observer Observer) *MqttBridge {
	opts := mqtt.NewClientOptions().
		AddBroker(config.Server).
		SetClientID(config.ClientID).
		SetAutoReconnect(true)
	if config.Username != "" {
		opts.SetUsername(config.Username)
	}
	if config.Password != "" {
		opts.SetPassword(config.Password)
	}

	return &MqttBridge{
		config:   config,
		registry: registry,
		observer: observer,
		client:   mqtt.NewClient(opts),
	}
}

// Run connects to the broker and bridges messages until ctx is cancelled.
func (b *MqttBridge) Run(ctx context.Context) error {
	token := b.client.Connect()
	if err := waitFor(token); err != nil {
		return fmt.Errorf("mqtt connect: %w", err)
	}
	defer b.client.Disconnect(disconnectQuiesce)

	subscription := b.config.TopicPrefix + "/+/" + topicDigit
	token = b.client.Subscribe(subscription, b.config.Qos, func(client mqtt.Client, msg mqtt.Message) {
		topic, payload, err := b.convert(msg.Topic(), msg.Payload())
		if err != nil {
			ui.Warning("Ignoring message on %s: %v", msg.Topic(), err)
			return
		}
		if err := waitFor(client.Publish(topic, b.config.Qos, false, payload)); err != nil {
			ui.Error("Unable to publish reading to %s: %v", topic, err)
		}
	})
	if err := waitFor(token); err != nil {
		return fmt.Errorf("mqtt subscribe %s: %w", subscription, err)
	}
	ui.Info("Bridging MQTT digits on %s", subscription)

	<-ctx.Done()

	_ = waitFor(b.client.Unsubscribe(subscription))
	return nil
}

// convert turns a digit message into the topic and payload of its reading.
func (b *MqttBridge) convert(topic string, payload []byte) (string, []byte, error) {
	sensorParam, err := b.sensorFromTopic(topic)
	if err != nil {
		return "", nil, err
	}

	id, ok := b.registry.ParseId(sensorParam)
	if !ok {
		return "", nil, fmt.Errorf("unknown sensor '%s'", sensorParam)
	}

	digit, err := strconv.Atoi(strings.TrimSpace(string(payload)))
	if err != nil {
		return "", nil, fmt.Errorf("invalid digit: %w", err)
	}

	reading := b.registry.Read(digit, id)
	if b.observer != nil {
		b.observer.Observe(reading)
	}

	data, err := json.Marshal(reading)
	if err != nil {
		return "", nil, err
	}

	return strings.Join([]string{b.config.TopicPrefix, sensorParam, topicTemperature}, "/"), data, nil
}

func (b *MqttBridge) sensorFromTopic(topic string) (string, error) {
	prefix := b.config.TopicPrefix + "/"
	suffix := "/" + topicDigit
	if !strings.HasPrefix(topic, prefix) || !strings.HasSuffix(topic, suffix) {
		return "", fmt.Errorf("unexpected topic")
	}
	sensor := strings.TrimSuffix(strings.TrimPrefix(topic, prefix), suffix)
	if len(sensor) <= 0 || strings.Contains(sensor, "/") {
		return "", fmt.Errorf("unexpected topic")
	}
	return sensor, nil
}

func waitFor(token mqtt.Token) error {
	if !token.WaitTimeout(tokenTimeout) {
		return fmt.Errorf("timeout after %s", tokenTimeout)
	}
	return token.Error()
}
