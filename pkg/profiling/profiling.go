// Package profiling wires the -cpuprofile and -memprofile flags to runtime/pprof.
package profiling

import (
	"io"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile
var pprofWriteHeapProfile = func(w io.Writer) error {
	return pprof.WriteHeapProfile(w)
}

// DoCPUProfiling starts CPU profiling into fileName and returns the function that stops it.
// On failure the error is logged and a no-op is returned.
func DoCPUProfiling(fileName string) (stop func()) {
	f, err := osCreate(fileName)
	if err != nil {
		log.Printf("could not create CPU profile: %v", err)
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		log.Printf("could not start CPU profile: %v", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		if err := f.Close(); err != nil {
			log.Printf("could not close CPU profile: %v", err)
		}
	}
}

// DoMemProfiling returns a function that writes a heap profile into fileName when called.
func DoMemProfiling(fileName string) (write func()) {
	return func() {
		f, err := osCreate(fileName)
		if err != nil {
			log.Printf("could not create memory profile: %v", err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			log.Printf("could not write memory profile: %v", err)
		}
	}
}
