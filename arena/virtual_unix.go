//go:build linux || darwin || freebsd

package arena

import "golang.org/x/sys/unix"

// reserve maps an anonymous private region. The kernel commits pages lazily.
func reserve(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
}

func unreserve(region []byte) error {
	return unix.Munmap(region)
}
