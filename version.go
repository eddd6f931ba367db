package main

import "fmt"

var Version = "0.1.0"

// UserAgent identifies jot in requests sent to the document service.
func UserAgent() string {
	return fmt.Sprintf("jot/%s", Version)
}
