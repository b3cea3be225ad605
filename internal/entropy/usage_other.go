//go:build !linux

package entropy

import "runtime"

func platformUsage() (mem, disk uint64) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapIdle & 0xFFFFFFFF, 0
}
