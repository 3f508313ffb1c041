package main

import "fmt"

// Minimal variant kept alongside cmd/salute: one greeting line, no flags,
// no validation. The full CLI lives in cmd/salute.
func main() {
	fmt.Println("Hello, World!")
}
