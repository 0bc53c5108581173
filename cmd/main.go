package main

import (
	"fmt"
	"time"

	"github.com/baxromumarov/mvar"
)

func main() {
	result := mvar.NewEmpty[string]()

	go func() {
		// Simulate a slow computation, then publish the result.
		time.Sleep(100 * time.Millisecond)
		result.Put("computation finished")
	}()

	now := time.Now()

	// Read blocks until the worker publishes, then leaves the value in
	// place for anyone else who wants it.
	fmt.Println(result.Read())
	fmt.Println("waited:", time.Since(now).Round(time.Millisecond))
	fmt.Println("still available:", result.Read())
}
