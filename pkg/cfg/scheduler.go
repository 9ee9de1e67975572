package cfg

import "fmt"

const (
	minQueueWorkers = 1
	maxQueueWorkers = 1024
	maxRetries      = 100
)

// Scheduler contains the concurrency limits of the task queues and the
// failure policy of the scheduler.
type Scheduler struct {
	// Fetchers is the maximum number of concurrent source downloads.
	Fetchers int `yaml:"fetchers" env:"FETCHERS"`
	// Builders is the maximum number of concurrently built elements.
	Builders int `yaml:"builders" env:"BUILDERS"`
	// Pushers is the maximum number of concurrent artifact uploads.
	Pushers int `yaml:"pushers" env:"PUSHERS"`
	// NetworkRetries is how often a failed network task is retried.
	NetworkRetries int `yaml:"network-retries" env:"NETWORK_RETRIES"`
	// OnError specifies how the scheduler reacts when a task fails.
	OnError OnErrorAction `yaml:"on-error" env:"ON_ERROR"`
}

// OnErrorAction specifies how the scheduler reacts when a task fails.
type OnErrorAction string

const (
	// OnErrorContinue continues queueing tasks that do not depend on the
	// failed one.
	OnErrorContinue OnErrorAction = "continue"
	// OnErrorQuit queues no new tasks but waits for running ones.
	OnErrorQuit OnErrorAction = "quit"
	// OnErrorTerminate additionally terminates all running tasks.
	OnErrorTerminate OnErrorAction = "terminate"
)

func (a OnErrorAction) String() string {
	return string(a)
}

func (s *Scheduler) validate() error {
	for _, f := range []struct {
		key string
		val int
	}{
		{"fetchers", s.Fetchers},
		{"builders", s.Builders},
		{"pushers", s.Pushers},
	} {
		if f.val < minQueueWorkers || f.val > maxQueueWorkers {
			return newFieldError(
				fmt.Sprintf("must be in range [%d, %d]", minQueueWorkers, maxQueueWorkers),
				f.key)
		}
	}

	if s.NetworkRetries < 0 || s.NetworkRetries > maxRetries {
		return newFieldError(
			fmt.Sprintf("must be in range [0, %d]", maxRetries),
			"network-retries")
	}

	if err := validateEnum(s.OnError, OnErrorContinue, OnErrorQuit, OnErrorTerminate); err != nil {
		return fieldErrorWrap(err, "on-error")
	}

	return nil
}
