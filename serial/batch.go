package serial

import (
	"runtime"
	"sync"

	"github.com/monokrome/bl4-sub000/serial/spart"
)

// DecodeBatch decodes many serials concurrently. Results come back in
// input order, one slot per serial, and a failing serial only fails
// its own slot. workers below one means one worker per CPU.
func DecodeBatch(serials []string, catalog spart.Catalog, workers int) []BatchResult {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	results := make([]BatchResult, len(serials))
	indexes := make(chan int)
	waitGroup := sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			for index := range indexes {
				model, err := DecodeWithCatalog(serials[index], catalog)
				results[index] = BatchResult{Model: model, Err: err}
			}
		}()
	}
	for index := range serials {
		indexes <- index
	}
	close(indexes)
	waitGroup.Wait()
	return results
}
