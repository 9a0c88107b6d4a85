package cmdutil

import "context"

// Emit sends items in order, stopping at the first send error or when ctx is
// done. It returns the number of items sent.
func Emit[T any](ctx context.Context, items []T, send func(T) error) (int, error) {
	total := 0
	for _, it := range items {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		if err := send(it); err != nil {
			return total, err
		}
		total++
	}
	return total, nil
}
