// Package source provides demand-driven sources backed by external
// systems: text readers, Redis lists, and the NATS, Kafka and AMQP
// brokers.
//
// Every source draws exactly one value per downstream demand and never
// reads ahead, so an abandoned pipeline leaves no value stranded in
// flight. Connection management stays with the application: each
// constructor takes an already established handle (an io.Reader, a
// Redis client, a broker subscription) and the caller closes it after
// the run. A demand-driven stage must not own a background consumer
// goroutine, and every broker client exposes a synchronous fetch that
// maps onto one demand.
//
// Sources that can observe a natural end of stream (EOF, an exhausted
// list, a closed delivery channel) terminate cleanly with gopull.Unit.
// Broker subscriptions without such an end only terminate by
// abandonment or error.
package source
