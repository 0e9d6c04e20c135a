package analytics

import (
	"context"
	"encoding/json"
	"maps"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const emitTimeout = 2 * time.Second

// Producer publishes game events as JSON messages. A nil Producer drops
// everything, so callers do not need to check whether Kafka is configured.
type Producer struct {
	writer *kafka.Writer
	now    func() time.Time
}

// NewProducer takes a comma separated broker list.
func NewProducer(brokers, topic string) *Producer {
	var addrs []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			addrs = append(addrs, b)
		}
	}
	w := &kafka.Writer{
		Addr:     kafka.TCP(addrs...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{writer: w, now: time.Now}
}

// Message builds the wire form of an event. The payload map is not modified.
func (p *Producer) Message(event string, payload map[string]any) (kafka.Message, error) {
	body := make(map[string]any, len(payload)+2)
	maps.Copy(body, payload)
	body["event"] = event
	body["ts"] = p.now().UTC()

	b, err := json.Marshal(body)
	if err != nil {
		return kafka.Message{}, err
	}
	msg := kafka.Message{Value: b}
	if id, ok := payload["gameId"].(string); ok {
		msg.Key = []byte(id)
	}
	return msg, nil
}

// Emit sends one event. Failures are logged, never returned.
func (p *Producer) Emit(ctx context.Context, event string, payload map[string]any) {
	if p == nil || p.writer == nil {
		return
	}
	msg, err := p.Message(event, payload)
	if err != nil {
		log.Error().Err(err).Str("component", "kafka").Str("event", event).Msg("could not encode event")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, emitTimeout)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Warn().Err(err).Str("component", "kafka").Str("event", event).Msg("kafka emit failed")
	}
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
