//go:build !linux && !darwin && !freebsd

package arena

// reserve falls back to a plain heap allocation where mmap isn't used.
func reserve(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func unreserve(region []byte) error {
	return nil
}
