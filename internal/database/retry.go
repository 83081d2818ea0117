package database

import (
	"log"
	"strings"
)

var transientConditions = []string{
	"Connection terminated",
	"shutdown",
	"client_termination",
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, cond := range transientConditions {
		if strings.Contains(msg, cond) {
			return true
		}
	}
	return false
}

// withRetry runs fn, retrying exactly once when the connection was torn
// down underneath us.
func (d *Database) withRetry(fn func() error) error {
	err := fn()
	if isTransient(err) {
		log.Printf("transient database error, retrying: %v", err)
		err = fn()
	}
	return err
}
