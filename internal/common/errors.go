package common

import "fmt"

// FetchError is returned when the upstream provider fails for a batch after
// the client exhausted its retries.
type FetchError struct {
	Stage string
	Batch string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed in stage %s for batch %s: %v", e.Stage, e.Batch, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// SinkWriteError is returned when persisting a batch fails.
type SinkWriteError struct {
	Stage string
	Batch string
	Err   error
}

func (e *SinkWriteError) Error() string {
	return fmt.Sprintf("sink write failed in stage %s for batch %s: %v", e.Stage, e.Batch, e.Err)
}

func (e *SinkWriteError) Unwrap() error {
	return e.Err
}

// DecodeError marks an inbound message that can never be processed as-is.
type DecodeError struct {
	Payload []byte
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode range request %q: %v", string(e.Payload), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// QueueConnectionError is returned when the broker cannot be reached.
type QueueConnectionError struct {
	Brokers string
	Err     error
}

func (e *QueueConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to kafka brokers %s: %v", e.Brokers, e.Err)
}

func (e *QueueConnectionError) Unwrap() error {
	return e.Err
}
