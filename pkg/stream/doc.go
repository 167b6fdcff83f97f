// Package stream adapts the two shapes of asynchronous results used by relm
// widgets, a one-shot computation and a sequence of values delivered over
// time, to a single lazy sequence type.
//
// A Source yields items from Next until it returns io.EOF. Any other error
// is terminal: consumers stop reading that source and do not retry.
//
//	s := stream.Future[int](fetchCount).ToStream() // yields one item, then io.EOF
//	t := stream.Interval(time.Second)              // yields a tick every second
//
// Both values satisfy Streamer, so code accepting a Streamer never needs to
// know which shape it was handed.
//
// Streams are single-consumer and introduce no buffering of their own.
package stream
