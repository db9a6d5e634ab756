package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	ProducerRetryMax = 3
	ProducerTimeout  = 10 * time.Second
)

// KafkaVersion is the minimum broker version the client targets.
var KafkaVersion = sarama.V2_6_0_0
