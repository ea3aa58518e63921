package main

import "os"
import "runtime/pprof"

// startProfile collects a CPU profile into default.pgo until the returned
// function is called.
func startProfile() (stop func()) {
	f, err := os.Create("default.pgo")
	if err != nil {
		println("pgo:", err.Error())
		return func() {}
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		println("pgo:", err.Error())
		f.Close()
		return func() {}
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}
}
