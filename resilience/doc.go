// Package resilience retries operations against remote backends with
// exponential backoff.
//
//	err := resilience.Do(ctx, resilience.DefaultPolicy(), "upload", func(ctx context.Context) error {
//		return store.Upload(ctx, path, bytes.NewReader(data))
//	})
package resilience
