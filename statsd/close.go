package statsd

// Close drains and tears down a root client
//
// The sequence is fixed: the flush scheduler is stopped first so no timer tick can
// fire during teardown, then buffered content gets one final drain flush, then the
// dispatcher waits (bounded) for in-flight writes and closes the socket. After Close
// the whole client tree, children included, can no longer send.
//
// Close is idempotent: repeated calls return nil without re-closing the socket or
// re-reporting an earlier failure. At most one error is returned even when both the
// drain flush and the socket close fail.
func (client *Client) Close() error {
	if client.isChild {
		return ErrChildClose
	}
	if !client.closeOnce() {
		return nil
	}
	return client.closeErr
}

func (client *Client) drainAndClose() {
	if client.scheduler != nil {
		client.scheduler.Stop()
	}

	var drainErr error
	client.flush(client.metrics.flushedOnClose, func(err error) {
		drainErr = err
	})

	var closeErr error
	client.dispatcher.Close(func(err error) {
		closeErr = err
	})

	if drainErr != nil {
		client.closeErr = drainErr
	} else {
		client.closeErr = closeErr
	}
	if client.closeErr == nil {
		client.logger.Info("closed")
	}
}
