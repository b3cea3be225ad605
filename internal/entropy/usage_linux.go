//go:build linux

package entropy

import "golang.org/x/sys/unix"

func platformUsage() (mem, disk uint64) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err == nil {
		mem = uint64(info.Freeram) & 0xFFFFFFFF
	}

	var fs unix.Statfs_t
	if err := unix.Statfs("/", &fs); err == nil {
		disk = fs.Bfree & 0x0FFFFFFF
	}
	return mem, disk
}
