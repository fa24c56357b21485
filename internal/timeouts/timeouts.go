// Package timeouts defines timeout, retry, and buffer constants shared by the
// OS wrappers.
package timeouts

import "time"

const (
	// Clipboard

	// ClipboardOpenAttempts is how many times OpenClipboard is tried before
	// giving up. Another process commonly holds the clipboard for a few
	// milliseconds while it reads or writes.
	ClipboardOpenAttempts = 5

	// ClipboardOpenDelay is the pause between OpenClipboard attempts.
	ClipboardOpenDelay = 10 * time.Millisecond

	// HTTP

	// HTTPTimeout bounds a single download request, including the body.
	HTTPTimeout = 30 * time.Second

	// HTTPRetryMax is the number of retries for a failed download request.
	HTTPRetryMax = 3

	// HTTPRetryWaitMin and HTTPRetryWaitMax bound the backoff between retries.
	HTTPRetryWaitMin = 500 * time.Millisecond
	HTTPRetryWaitMax = 5 * time.Second

	// DownloadBlockSize is the size of each block handed to a download callback.
	DownloadBlockSize = 4096

	// Process

	// ProcessKillWait is how long RunCommand waits for a cancelled child to
	// exit after TerminateProcess.
	ProcessKillWait = 5 * time.Second

	// ProcessPollInterval is how often RunCommand checks for cancellation
	// while the child runs.
	ProcessPollInterval = 50 * time.Millisecond
)
