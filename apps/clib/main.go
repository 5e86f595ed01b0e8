package main

/*
#include <stdint.h>
*/
import "C"
import (
	"log"
	"os"
	"runtime/cgo"
	"unsafe"

	"github.com/tutils/trand"
	"github.com/tutils/trand/cmd"
	"github.com/tutils/trand/rng/xlcg"
)

//export RunCmd
func RunCmd(cargs **C.char, size C.int) {
	log.SetFlags(log.Ltime | log.Lshortfile)

	args := os.Args[:1]
	ptr := unsafe.Pointer(cargs)
	for i := 0; i < int(size); i++ {
		cStrPtr := (**C.char)(unsafe.Pointer(uintptr(ptr) + uintptr(i)*unsafe.Sizeof(uintptr(0))))
		args = append(args, C.GoString(*cStrPtr))
	}
	os.Args = args
	cmd.Execute()
}

// TrandNew returns a handle to a generator starting at seed. Release it with TrandFree.
//
//export TrandNew
func TrandNew(seed C.int64_t) C.uintptr_t {
	g := trand.NewSyncGenerator(xlcg.NewWithSeed(int64(seed)))
	return C.uintptr_t(cgo.NewHandle(g))
}

//export TrandNext
func TrandNext(h C.uintptr_t, minVal, maxVal C.int64_t) C.int64_t {
	g := cgo.Handle(h).Value().(*trand.SyncGenerator)
	return C.int64_t(g.Next(int64(minVal), int64(maxVal)))
}

//export TrandState
func TrandState(h C.uintptr_t) C.int64_t {
	g := cgo.Handle(h).Value().(*trand.SyncGenerator)
	return C.int64_t(g.State())
}

//export TrandFree
func TrandFree(h C.uintptr_t) {
	cgo.Handle(h).Delete()
}

func main() {} // required by -buildmode=c-shared
