// Package resilience holds the fault tolerance used around remote draft
// providers and the database readiness probe.
//
//   - circuitbreaker: stops calling a dependency that keeps failing
//   - retry: re-runs calls that failed for a transient reason
//
// A remote drafter nests them, the breaker inside the retry loop:
//
//	err := retry.Do(ctx, retry.DrafterConfig(), func(ctx context.Context) error {
//	    text, err := circuitbreaker.Call(cb, func() (string, error) {
//	        return complete(ctx, req)
//	    })
//	    ...
//	})
package resilience
