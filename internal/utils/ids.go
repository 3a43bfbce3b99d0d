// internal/utils/ids.go
package utils

import (
	"regexp"

	nanoid "github.com/jaevor/go-nanoid"
)

// Record ids are 15-char lowercase alphanumeric tokens. Every id coming
// from a client is matched against this pattern before it reaches a query.
const recordIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

const RecordIDLength = 15

var recordIDPattern = regexp.MustCompile(`^[a-z0-9]{15}$`)

var newRecordID func() string

func init() {
	gen, err := nanoid.CustomASCII(recordIDAlphabet, RecordIDLength)
	if err != nil {
		panic(err)
	}
	newRecordID = gen
}

func NewRecordID() string {
	return newRecordID()
}

func IsRecordID(id string) bool {
	return recordIDPattern.MatchString(id)
}
