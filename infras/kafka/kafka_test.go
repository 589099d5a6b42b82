package kafka_test

import (
	"testing"

	"forest/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	Kind  string `json:"kind"`
	Phone string `json:"phone"`
}

func TestMessageRoundTrip(t *testing.T) {
	message := kafka.Message{Key: "order-1", Value: event{Kind: "sms", Phone: "+79990000000"}}

	raw, err := message.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("order-1"), raw.Key)

	decoded, err := kafka.Decode[event](raw)
	require.NoError(t, err)
	assert.Equal(t, "sms", decoded.Kind)
	assert.Equal(t, "+79990000000", decoded.Phone)
}

func TestDecodeInvalidPayload(t *testing.T) {
	_, err := kafka.Decode[event](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}

func TestToKafkaMessageUnsupportedValue(t *testing.T) {
	message := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage()
	assert.Error(t, err)
}
