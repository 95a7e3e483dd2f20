package store

import "errors"

var (
	// ErrDeviceKeyNotFound is returned when no public key is registered
	// for a device identifier.
	ErrDeviceKeyNotFound = errors.New("device key not found")

	// ErrDeviceKeyExists is returned when a registration targets a
	// device that already holds a key record. Records are write-once.
	ErrDeviceKeyExists = errors.New("device key already registered")

	// ErrAlreadyReserved is returned by conditional inserts when a live
	// (unexpired) reservation already holds the (pk, sk) slot.
	ErrAlreadyReserved = errors.New("record already reserved")

	// ErrPendingNotFound is returned when a queue row id does not exist.
	ErrPendingNotFound = errors.New("pending submission not found")
)
