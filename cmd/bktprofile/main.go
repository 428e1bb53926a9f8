// Command bktprofile runs a synthetic workload against bktarray on each
// arena kind and prints container and arena metrics. With --pprof it also
// serves profiling endpoints and keeps running after the workload.
//
// Usage:
//
//	go run ./cmd/bktprofile --arena heap --items 1000000 --bucket 256
//	go run ./cmd/bktprofile run --arena safe --workers 8
//	go run ./cmd/bktprofile validate --arena virtual --check-every 500
package main

func main() {
	execute()
}
